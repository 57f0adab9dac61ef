package hivegen

import (
	"github.com/joshuapare/hivedigger/internal/format"
	"github.com/joshuapare/hivedigger/pkg/types"
)

// System builds a SYSTEM-like hive holding jd as value JD of
// CurrentControlSet\Control\Lsa, surrounded by sibling keys and values so
// that every lookup step has to skip something. The three levels use lh,
// lf, and li lists respectively.
func System(jd []byte, opts ...Option) *Hive {
	h := New(append([]Option{WithFileName(`\SystemRoot\System32\Config\SYSTEM`)}, opts...)...)

	lsa := h.Tree("Lsa", format.ListLI, nil,
		h.Value("auditbaseobjects", types.REG_DWORD, []byte{0, 0, 0, 0}),
		h.Value("JD", types.REG_BINARY, jd),
		h.Value("Security Packages", types.REG_MULTI_SZ, utf16z("kerberos", "msv1_0")),
	)
	control := h.Tree("Control", format.ListLI, []uint32{
		h.Tree("ComputerName", format.ListLI, nil),
		lsa,
		h.Tree("Session Manager", format.ListLI, nil),
	})
	ccs := h.Tree("CurrentControlSet", format.ListLF, []uint32{
		control,
		h.Tree("Enum", format.ListLI, nil),
		h.Tree("Services", format.ListLI, nil),
	})
	root := h.Tree("ROOT", format.ListLH, []uint32{
		h.Tree("ControlSet001", format.ListLI, nil),
		ccs,
		h.Tree("Select", format.ListLI, nil,
			h.Value("Current", types.REG_DWORD, []byte{1, 0, 0, 0})),
	})
	h.SetRoot(root)
	return h
}

func utf16z(parts ...string) []byte {
	var out []byte
	for _, p := range parts {
		b, err := format.EncodeUTF16(p)
		if err != nil {
			panic(err)
		}
		out = append(out, b...)
		out = append(out, 0, 0)
	}
	return append(out, 0, 0)
}
