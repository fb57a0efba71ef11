package persona

import "gitlab.com/gomidi/midi/v2"

// NoteOnKey extracts the key and velocity of a note-on message.  Note-ons
// with velocity 0 are note-offs and report false.
func NoteOnKey(msg midi.Message) (key, velocity uint8, ok bool) {
	var channel uint8
	if !msg.GetNoteStart(&channel, &key, &velocity) {
		return 0, 0, false
	}
	return key, velocity, true
}
