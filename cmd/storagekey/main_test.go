package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/forestrie/go-storagekey/config"
	"github.com/forestrie/go-storagekey/hashers"
	"github.com/forestrie/go-storagekey/scale"
	"github.com/forestrie/go-storagekey/storagekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aliceAccountKey = "26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9" +
	"de1e86a9a8c739864cf3cc5ec2bea59f" +
	"d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"

// runCLI runs the command with a quiet logger and returns its exit code and
// output streams.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "storagekey.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("log_level: NOOP\n"), 0644))
	t.Setenv(config.EnvConfig, cfg)

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage: storagekey")

	code, _, stderr = runCLI(t, "frobnicate")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, stdout, _ := runCLI(t, "help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "decode")
}

func TestKey(t *testing.T) {
	code, stdout, stderr := runCLI(t, "key", "-n", "System", "-i", "Account",
		"-p", "blake2_128_concat=0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d")
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, aliceAccountKey+"\n", stdout)
}

func TestKeyTypedParams(t *testing.T) {
	code, stdout, stderr := runCLI(t, "key", "--namespace", "ModuleAbc", "--item", "Map2",
		"--param", "identity=u32:1", "--param", "identity=compact:2", "--param", "identity=")
	require.Equal(t, exitOK, code, stderr)

	want := storagekey.Anchor("ModuleAbc", "Map2").Hex() + "01000000" + "08"
	assert.Equal(t, want+"\n", stdout)
}

func TestKeyErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no equals", []string{"-p", "identity"}, exitUsage},
		{"no type", []string{"-p", "identity=1"}, exitUsage},
		{"unknown hasher", []string{"-p", "md5=u8:1"}, exitFail},
		{"prefix hasher", []string{"-p", "twox128=u8:1"}, exitFail},
		{"value range", []string{"-p", "identity=u8:256"}, exitFail},
		{"bad hex", []string{"-p", "identity=0xzz"}, exitFail},
		{"unknown flag", []string{"--bogus"}, exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"key", "-n", "A", "-i", "B"}, tt.args...)
			code, _, stderr := runCLI(t, args...)
			assert.Equal(t, tt.code, code, stderr)
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
		want string
	}{
		{"u32", []string{"-t", "u32", "0x2a000000"}, exitOK, "u32 42 (4 bytes)\n"},
		{"compact", []string{"-t", "compact", "1501"}, exitOK, "compact 69 (2 bytes)\n"},
		{"strict some true", []string{"-t", "Option<bool>", "0101"}, exitOK, "Option<bool> Some(true) (2 bytes)\n"},
		{"strict none", []string{"-t", "Option<bool>", "00"}, exitOK, "Option<bool> None (1 bytes)\n"},
		{"compact some false", []string{"-t", "Option<bool>", "--option-bool", "compact", "02"}, exitOK, "Option<bool> Some(false) (1 bytes)\n"},
		{"partial allowed", []string{"-t", "u8", "--full=false", "0102"}, exitOK, "u8 1 (1 bytes)\n"},
		{"trailing bytes", []string{"-t", "u8", "0102"}, exitFail, ""},
		{"strict ambiguous", []string{"-t", "Option<bool>", "02"}, exitFail, ""},
		{"truncated", []string{"-t", "u64", "01"}, exitFail, ""},
		{"no type", []string{"01"}, exitUsage, ""},
		{"no data", []string{"-t", "u8"}, exitUsage, ""},
		{"bad scheme", []string{"-t", "u8", "--option-bool", "loose", "01"}, exitUsage, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, append([]string{"decode"}, tt.args...)...)
			require.Equal(t, tt.code, code, stderr)
			if tt.code == exitOK {
				assert.Equal(t, tt.want, stdout)
			}
		})
	}
}

func TestBatchYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	doc := `requests:
  - namespace: Timestamp
    item: Now
  - namespace: System
    item: Account
    params:
      - hasher: blake2_128_concat
        hex: d43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	code, stdout, stderr := runCLI(t, "batch", path)
	require.Equal(t, exitOK, code, stderr)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "0 Timestamp Now f0c365c3cf59d671eb72da0e7a4113c49f1f0515f462cdcf84e0f1d6045dfcbb", lines[0])
	assert.Equal(t, "1 System Account "+aliceAccountKey, lines[1])
}

func TestBatchCBORReportsFailures(t *testing.T) {
	data, err := storagekey.MarshalRequestsCBOR([]storagekey.Request{
		{Namespace: "Sudo", Item: "Key"},
		{Namespace: "Bad", Item: "Hasher", Params: []storagekey.RequestParam{{Hasher: "sha1"}}},
	})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "requests.cbor")
	require.NoError(t, os.WriteFile(path, data, 0644))

	code, stdout, _ := runCLI(t, "batch", path)
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout, "0 Sudo Key 5c0d1176a568c1f92944340dbfed9e9c530ebca703c85910e7164cb7d1c9e47b")
	assert.Contains(t, stdout, "1 Bad Hasher error:")
}

func TestPutGet(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "state.db")
	key := []string{"-n", "ModuleAbc", "-i", "Map3", "-p", "twox64_concat=u32:7"}

	code, _, stderr := runCLI(t, append([]string{"put", "--snapshot", snapshot,
		"-t", "Option<bool>", "--value", "false"}, key...)...)
	require.Equal(t, exitOK, code, stderr)

	code, stdout, stderr := runCLI(t, append([]string{"get", "--snapshot", snapshot,
		"-t", "Option<bool>"}, key...)...)
	require.Equal(t, exitOK, code, stderr)
	assert.True(t, strings.HasSuffix(stdout, " Some(false)\n"), stdout)

	// Reading with the other scheme does not consume the strict pair.
	code, _, _ = runCLI(t, append([]string{"get", "--snapshot", snapshot,
		"-t", "Option<bool>", "--option-bool", "compact"}, key...)...)
	assert.Equal(t, exitFail, code)

	code, _, stderr = runCLI(t, "get", "--snapshot", snapshot, "-t", "u8", "-n", "ModuleAbc", "-i", "Missing")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "key not found")
}

func TestGetNeedsSnapshot(t *testing.T) {
	code, _, _ := runCLI(t, "get", "-t", "u8", "-n", "A", "-i", "B")
	assert.Equal(t, exitUsage, code)
}

func TestParseParam(t *testing.T) {
	rp, err := parseParam("twox64_concat=Option<u32>:none")
	require.NoError(t, err)
	assert.Equal(t, storagekey.RequestParam{Hasher: "twox64_concat", Type: "Option<u32>", Value: "none"}, rp)

	rp, err = parseParam("identity=0x0102")
	require.NoError(t, err)
	assert.Equal(t, "0x0102", rp.Hex)

	rp, err = parseParam("identity=")
	require.NoError(t, err)
	assert.Equal(t, storagekey.RequestParam{Hasher: "identity"}, rp)

	_, err = parseParam("=u8:1")
	assert.ErrorIs(t, err, errUsage)
}

func TestPutGetOptionBoolSchemeCoversKey(t *testing.T) {
	snapshot := filepath.Join(t.TempDir(), "state.db")
	key := []string{"-n", "ModuleAbc", "-i", "Flags", "-p", "twox64_concat=Option<bool>:true",
		"-t", "Option<bool>", "--option-bool", "compact"}

	code, stdout, stderr := runCLI(t, append([]string{"put", "--snapshot", snapshot, "--value", "false"}, key...)...)
	require.Equal(t, exitOK, code, stderr)

	param, err := storagekey.TypedParam(scale.Some(scale.Bool(true)), hashers.KindConcat64,
		scale.WithOptionBoolScheme(scale.OptionBoolCompact))
	require.NoError(t, err)
	require.Equal(t, []byte{1}, param.Data)
	want, err := storagekey.ForMap("ModuleAbc", "Flags", param)
	require.NoError(t, err)
	// Compact Some(false) is the single byte 0x02.
	assert.Equal(t, want.Hex()+" 02\n", stdout)

	code, stdout, stderr = runCLI(t, append([]string{"get", "--snapshot", snapshot}, key...)...)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, want.Hex()+" Some(false)\n", stdout)
}
