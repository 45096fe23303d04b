package model

// Note is a pitch-class symbol like "C", "F#" or "Bb". The empty string acts
// as a placeholder slot in fixed-width chord records.
type Note = string

type Notes = []Note
