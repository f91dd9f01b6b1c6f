package metrics

import "sync"

// Recorder counts completions served per topic and relay failures.
type Recorder struct {
	mu        sync.Mutex
	chats     map[string]int
	relayErrs int
}

func New() *Recorder {
	return &Recorder{chats: make(map[string]int)}
}

func (r *Recorder) RecordChat(topic string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chats[topic]++
}

func (r *Recorder) RecordRelayError() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.relayErrs++
}

// ChatCount returns how many completions were served for a topic.
func (r *Recorder) ChatCount(topic string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.chats[topic]
}

// TotalChats returns the number of completions served across all topics.
func (r *Recorder) TotalChats() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := 0
	for _, n := range r.chats {
		total += n
	}
	return total
}

func (r *Recorder) RelayErrors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.relayErrs
}
