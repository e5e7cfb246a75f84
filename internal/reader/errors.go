package reader

import (
	"errors"

	"github.com/joshuapare/pakkit/internal/format"
	"github.com/joshuapare/pakkit/pkg/types"
)

func wrapIOErr(err error) error {
	return &types.Error{Kind: types.ErrKindIO, Msg: "io", Err: err}
}

func wrapFormatErr(err error) error {
	switch {
	case errors.Is(err, format.ErrSignatureMismatch):
		return &types.Error{Kind: types.ErrKindFormat, Msg: types.ErrUnrecognizedFormat.Msg, Err: err}
	case errors.Is(err, format.ErrTruncated):
		return &types.Error{Kind: types.ErrKindTruncated, Msg: types.ErrTruncatedInput.Msg, Err: err}
	case errors.Is(err, format.ErrInvalidEncoding):
		return &types.Error{Kind: types.ErrKindEncoding, Msg: types.ErrInvalidEncoding.Msg, Err: err}
	case errors.Is(err, format.ErrOutOfBounds):
		return &types.Error{Kind: types.ErrKindBounds, Msg: types.ErrOutOfBounds.Msg, Err: err}
	default:
		return &types.Error{Kind: types.ErrKindFormat, Msg: "pak archive", Err: err}
	}
}
