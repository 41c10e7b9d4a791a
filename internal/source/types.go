package source

// FileID indexes a document inside its FileSet.
type FileID uint32

// FileFlags records where a document came from.
type FileFlags uint8

// FileVirtual marks text handed over in memory: library input, stdin, tests.
const FileVirtual FileFlags = 1

// File is one markup document with its line index.
type File struct {
	ID   FileID
	Path string
	// Content is the exact text the lexer sees; spans index into it.
	Content []byte
	// LineIdx holds the offset of every '\n', in order.
	LineIdx []uint32
	Flags   FileFlags
}

// LineCol is a 1-based position; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
