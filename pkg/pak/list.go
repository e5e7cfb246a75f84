package pak

import (
	"github.com/opencontainers/go-digest"

	"github.com/joshuapare/pakkit/internal/format"
	"github.com/joshuapare/pakkit/pkg/types"
)

// List returns one entry per record in table order. Records whose data lies
// outside the payload are listed with InBounds false, unless a digest is
// requested, in which case List fails with ErrOutOfBounds.
func List(a *Archive, opts *ListOptions) ([]types.Entry, error) {
	var o ListOptions
	if opts != nil {
		o = *opts
	}

	entries := make([]types.Entry, 0, a.Len())
	for i, n := 0, a.Len(); i < n; i++ {
		r := a.Record(i)
		e := types.Entry{
			Name:     r.Name,
			Offset:   r.Offset,
			Size:     r.Size,
			ModTime:  format.FiletimeToTime(r.RawTime),
			InBounds: a.InBounds(r),
		}
		if o.Digest {
			data, err := a.Data(r)
			if err != nil {
				return nil, err
			}
			e.Digest = digest.FromBytes(data).String()
		}
		entries = append(entries, e)
	}
	return entries, nil
}
