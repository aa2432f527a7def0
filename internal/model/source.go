package model

// Path represents a file system path.
type Path string

// File identifies one source file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is an R script selected for mutation.
type Source struct {
	Origin *File
}

// BlockScope records how a statement relates to { } blocks.
type BlockScope string

const (
	// ScopeTopLevel is a top-level statement outside any block.
	ScopeTopLevel BlockScope = "top-level"
	// ScopeBlock is a top-level { } statement; deletions are considered in it.
	ScopeBlock BlockScope = "block"
)
