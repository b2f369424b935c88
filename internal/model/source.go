package model

// Path represents a file system path.
type Path string

// FilePair is one buggy/fixed file pair. An empty side means the counterpart
// is missing and the pair is skipped.
type FilePair struct {
	Before Path `yaml:"before"`
	After  Path `yaml:"after"`
}

// Complete reports whether both sides are present.
func (p FilePair) Complete() bool {
	return p.Before != "" && p.After != ""
}

func (p FilePair) String() string {
	return string(p.Before) + " -> " + string(p.After)
}
