package load

import (
	"beadchain/types"
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"testing"
)

const stringParams = `# 三个珠子的弦
STRING
10.5      // 张力
3
0.5 1 0.1 0
1   2 0   1.5
0.5 1 -0.1 0
0.25
`

// TestLoadString 加载弦参数
func TestLoadString(t *testing.T) {
	sim, err := LoadString(stringParams)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if s, ok := sim.Medium.(types.String); !ok || s.Tension != 10.5 {
		t.Fatalf("medium = %#v, expected String{10.5}", sim.Medium)
	}
	expectedBeads := []types.Bead{
		{Mass: 1, X0: 0.1, V0: 0},
		{Mass: 2, X0: 0, V0: 1.5},
		{Mass: 1, X0: -0.1, V0: 0},
	}
	if !reflect.DeepEqual(sim.Beads, expectedBeads) {
		t.Errorf("beads = %v, expected %v", sim.Beads, expectedBeads)
	}
	expectedConns := types.Connections{0.5, 1, 0.5, 0.25}
	if !reflect.DeepEqual(sim.Connections, expectedConns) {
		t.Errorf("connections = %v, expected %v", sim.Connections, expectedConns)
	}
}

// TestLoadSpring 弹簧没有张力行
func TestLoadSpring(t *testing.T) {
	sim, err := LoadString("spring 1 3 2 0.1 -0.3 5")
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if sim.Kind() != types.TypeSpring {
		t.Errorf("kind = %v, expected Spring", sim.Kind())
	}
	if sim.NumBeads() != 1 || sim.Connections[0] != 3 || sim.Connections[1] != 5 || sim.Beads[0].Mass != 2 {
		t.Errorf("sim = %+v", sim)
	}
}

// TestLoadErrors 格式错误
func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "expected simulation type"},
		{"unknown type", "rope 1 1 1 1 1 1 1", "either string or spring"},
		{"bad tension", "string abc 1", "invalid tension"},
		{"zero beads", "spring 0 1", "bead count must be positive"},
		{"no tension", "string\n", "line 1: unexpected end of input, expected tension"},
		{"truncated", "spring 2\n1 1 0 0\n1 1", "bead count 2 needs 9 more values, file has 6"},
		{"huge count", "spring 2000000000 1", "bead count 2000000000 needs 8000000001 more values, file has 1"},
		{"bad number", "spring 1\n1 x 0 0\n1", `line 2: invalid bead 0 mass "x"`},
		{"trailing", "spring 1 1 1 0 0 1 7", "unexpected \"7\""},
	}
	for _, c := range cases {
		_, err := LoadString(c.input)
		if err == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if !strings.Contains(err.Error(), c.want) {
			t.Errorf("%s: error %q does not contain %q", c.name, err, c.want)
		}
	}
}

// TestLoadLongLine 整个文件写在一行，珠子数以千计
func TestLoadLongLine(t *testing.T) {
	const n = 3000
	var sb strings.Builder
	sb.WriteString("spring " + strconv.Itoa(n) + " ")
	for i := 0; i < n; i++ {
		sb.WriteString("1.5 2 0.001 -0.002 ")
	}
	sb.WriteString("1")
	if sb.Len() <= 64*1024 {
		t.Fatalf("input is only %d bytes", sb.Len())
	}
	sim, err := LoadString(sb.String())
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	if sim.NumBeads() != n || len(sim.Connections) != n+1 {
		t.Fatalf("beads = %d, connections = %d", sim.NumBeads(), len(sim.Connections))
	}
	if b := sim.Beads[n-1]; b.Mass != 2 || b.V0 != -0.002 || sim.Connections[n] != 1 {
		t.Errorf("last bead = %+v, last connection = %v", b, sim.Connections[n])
	}
}

// TestExportRoundTrip 导出后重新加载得到相同参数
func TestExportRoundTrip(t *testing.T) {
	sim, err := LoadString(stringParams)
	if err != nil {
		t.Fatalf("LoadString failed: %v", err)
	}
	var buf bytes.Buffer
	if err := Export(&buf, sim); err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	again, err := LoadReader(&buf)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if !reflect.DeepEqual(sim, again) {
		t.Errorf("round trip differs:\n%+v\n%+v", sim, again)
	}
}

// TestFile 文件读写
func TestFile(t *testing.T) {
	sim := &types.Simulation{
		Medium:      types.Spring{},
		Beads:       []types.Bead{{Mass: 1, X0: 1}, {Mass: 1.25, V0: -2}},
		Connections: types.Connections{1, 2, 1},
	}
	filename := filepath.Join(t.TempDir(), "spring.txt")
	if err := ExportFile(filename, sim); err != nil {
		t.Fatalf("ExportFile failed: %v", err)
	}
	again, err := LoadFile(filename)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !reflect.DeepEqual(sim, again) {
		t.Errorf("round trip differs:\n%+v\n%+v", sim, again)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); !os.IsNotExist(err) {
		t.Errorf("missing file: got %v", err)
	}
}
