package types

// NameEncoding selects how record names are decoded.
type NameEncoding int

const (
	// NameUTF8 requires names to be valid UTF-8; anything else fails with ErrInvalidEncoding.
	NameUTF8 NameEncoding = iota
	// NameWindows1252 decodes names as Windows-1252 (ANSI), which never fails.
	NameWindows1252
)

func (e NameEncoding) String() string {
	switch e {
	case NameWindows1252:
		return "windows-1252"
	default:
		return "utf8"
	}
}

// OpenOptions controls how an archive is read and parsed.
type OpenOptions struct {
	// Names selects the record name decoding. Default: NameUTF8.
	Names NameEncoding

	// MaxDecompressedSize caps the output of zstd-wrapped archives.
	// If zero, 1 GiB is used.
	MaxDecompressedSize uint64
}

// ExtractOptions controls extraction behavior.
type ExtractOptions struct {
	// Jobs is the number of records written concurrently. Values below 2
	// extract sequentially in table order.
	Jobs int

	// ContinueOnError keeps extracting after a record fails and returns all
	// failures joined. By default the first failure stops extraction.
	ContinueOnError bool

	// Sync flushes each file to stable storage before it is renamed into place.
	Sync bool

	// Filter selects records to extract. If nil, every record is extracted.
	Filter func(Record) bool

	// OnProgress is called after each record is written.
	// With Jobs > 1 it may be called from several goroutines, but never concurrently.
	OnProgress func(done, total int)
}

// ListOptions controls listing behavior.
type ListOptions struct {
	// Digest computes a sha256 content digest for every record.
	Digest bool
}
