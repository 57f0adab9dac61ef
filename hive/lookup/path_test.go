package lookup

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPath(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`CurrentControlSet\Control\Lsa`, []string{"CurrentControlSet", "Control", "Lsa"}},
		{`CurrentControlSet/Control/Lsa`, []string{"CurrentControlSet", "Control", "Lsa"}},
		{`HKLM\SYSTEM\CurrentControlSet\Control\Lsa`, []string{"CurrentControlSet", "Control", "Lsa"}},
		{`HKEY_LOCAL_MACHINE\System\Select`, []string{"Select"}},
		{`hklm/system`, nil},
		{`\\CurrentControlSet\\Control\`, []string{"CurrentControlSet", "Control"}},
		{` Select `, []string{"Select"}},
		{``, nil},
		{`\`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, SplitPath(tt.in))
		})
	}
}

func TestJoinPath(t *testing.T) {
	require.Equal(t, `CurrentControlSet\Control\Lsa`, JoinPath(DefaultPath))
	require.Empty(t, JoinPath(nil))
}
