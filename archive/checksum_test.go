package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigest_Parsing(t *testing.T) {
	tests := []struct {
		name   string
		digest Digest
		algo   string
		hex    string
	}{
		{"md5 prefixed", "md5:ABCDEF", "md5", "abcdef"},
		{"sha256", "sha256:00ff", "sha256", "00ff"},
		{"crc32", "crc32:12345678", "crc32", "12345678"},
		{"bare hex defaults to md5", "d41d8cd98f00b204e9800998ecf8427e", "md5", "d41d8cd98f00b204e9800998ecf8427e"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.algo, tt.digest.Algo())
			require.Equal(t, tt.hex, tt.digest.Hex())
		})
	}
}

func TestDigest_SumAndVerify(t *testing.T) {
	// md5("hello") is well known.
	want := Digest("5d41402abc4b2a76b9719d911017c592")

	got, err := MD5.Sum(strings.NewReader("hello"))
	require.NoError(t, err)
	require.Equal(t, Digest("md5:"+string(want)), got)

	ok, actual, err := want.Verify(strings.NewReader("hello"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, want.Hex(), actual.Hex())

	ok, _, err = want.Verify(strings.NewReader("tampered"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDigest_UnsupportedAlgo(t *testing.T) {
	_, err := Digest("sha1:abcd").Sum(strings.NewReader("x"))
	require.Error(t, err)
}

func TestVerifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	ok, _, err := VerifyFile(path, "5d41402abc4b2a76b9719d911017c592")
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = VerifyFile(filepath.Join(t.TempDir(), "missing"), MD5)
	require.Error(t, err)
}
