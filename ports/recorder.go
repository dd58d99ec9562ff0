package ports

import "github.com/automoto/sharkie/config"

// SoundCall is one recorded Sound port call.
type SoundCall struct {
	Op string // play, loop, stop, stopAll
	ID config.SoundID
}

// RecordingSound keeps every call in order. Used by tests and by the
// headless runner.
type RecordingSound struct {
	Calls   []SoundCall
	Looping map[config.SoundID]bool
}

func NewRecordingSound() *RecordingSound {
	return &RecordingSound{Looping: map[config.SoundID]bool{}}
}

func (r *RecordingSound) Play(id config.SoundID) {
	r.Calls = append(r.Calls, SoundCall{Op: "play", ID: id})
}

func (r *RecordingSound) PlayLoop(id config.SoundID) {
	r.Calls = append(r.Calls, SoundCall{Op: "loop", ID: id})
	r.Looping[id] = true
}

func (r *RecordingSound) Stop(id config.SoundID) {
	r.Calls = append(r.Calls, SoundCall{Op: "stop", ID: id})
	delete(r.Looping, id)
}

func (r *RecordingSound) StopAll() {
	r.Calls = append(r.Calls, SoundCall{Op: "stopAll"})
	r.Looping = map[config.SoundID]bool{}
}

// Count returns how often id was played (one-shot or loop).
func (r *RecordingSound) Count(id config.SoundID) int {
	n := 0
	for _, c := range r.Calls {
		if c.ID == id && (c.Op == "play" || c.Op == "loop") {
			n++
		}
	}
	return n
}

// RecordingNotifier keeps every notification in order.
type RecordingNotifier struct {
	Kinds []NotifyKind
}

func (r *RecordingNotifier) Notify(kind NotifyKind) {
	r.Kinds = append(r.Kinds, kind)
}

// Count returns how often kind was sent.
func (r *RecordingNotifier) Count(kind NotifyKind) int {
	n := 0
	for _, k := range r.Kinds {
		if k == kind {
			n++
		}
	}
	return n
}
