package format

import "github.com/joshuapare/hivedigger/pkg/types"

func truncated(what string, have, need int) error {
	return types.Errorf(types.ErrKindTruncated, "%s: truncated (have %d, need %d)", what, have, need)
}

func badSignature(what string, got []byte) error {
	return types.Errorf(types.ErrKindMalformedRecord, "%s: signature mismatch (got %q)", what, got)
}
