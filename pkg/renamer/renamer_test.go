package renamer

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/arthur-debert/renamer/pkg/errors"
	"github.com/arthur-debert/renamer/pkg/filesystem"
	"github.com/arthur-debert/renamer/pkg/pattern"
	"github.com/arthur-debert/renamer/pkg/testutil"
	"github.com/arthur-debert/renamer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOSRenamer() *Renamer {
	return New(Options{FS: filesystem.NewOS()})
}

func TestRename_PhotoScenario(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"photo1.jpg": "first",
		"photo2.jpg": "second",
		"notes.txt":  "keep me",
	})

	results, err := newOSRenamer().RenameAll(dir, "photo*.jpg", "img_*.jpg")
	require.NoError(t, err)

	assert.Equal(t, []types.RenameResult{
		{Dir: dir, OldName: "photo1.jpg", NewName: "img_1.jpg"},
		{Dir: dir, OldName: "photo2.jpg", NewName: "img_2.jpg"},
	}, results)

	assert.Equal(t, map[string]string{
		"img_1.jpg": "first",
		"img_2.jpg": "second",
		"notes.txt": "keep me",
	}, testutil.Snapshot(t, dir))
}

func TestRename_ExactNameScenario(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"draft.doc":     "draft",
		"draft.docx":    "other",
		"old-draft.doc": "older",
	})

	results, err := newOSRenamer().RenameAll(dir, "draft.doc", "final.doc")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "draft.doc", results[0].OldName)
	assert.Equal(t, "final.doc", results[0].NewName)

	assert.Equal(t, map[string]string{
		"final.doc":     "draft",
		"draft.docx":    "other",
		"old-draft.doc": "older",
	}, testutil.Snapshot(t, dir))
}

func TestRename_MissingDirectory(t *testing.T) {
	parent := testutil.TempDir(t)
	testutil.CreateFile(t, parent, "photo1.jpg", "x")
	missing := filepath.Join(parent, "does-not-exist")

	results, err := newOSRenamer().RenameAll(missing, "photo*.jpg", "img_*.jpg")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDirectory))
	assert.Empty(t, results)
	assert.Equal(t, map[string]string{"photo1.jpg": "x"}, testutil.Snapshot(t, parent))
}

func TestRename_DirectoryIsAFile(t *testing.T) {
	dir := testutil.TempDir(t)
	file := testutil.CreateFile(t, dir, "photo1.jpg", "x")

	_, err := newOSRenamer().RenameAll(file, "photo*.jpg", "img_*.jpg")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDirectory))
	testutil.AssertFileContent(t, file, "x")
}

func TestRename_CollisionFollowsPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("os.Rename refuses to replace an existing file on Windows")
	}

	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"a1.txt": "from a1",
		"a2.txt": "from a2",
	})

	results, err := newOSRenamer().RenameAll(dir, "a*.txt", "b.txt")

	// POSIX rename silently replaces the target: both renames succeed and
	// the file processed last wins.
	require.NoError(t, err)
	assert.Equal(t, []types.RenameResult{
		{Dir: dir, OldName: "a1.txt", NewName: "b.txt"},
		{Dir: dir, OldName: "a2.txt", NewName: "b.txt"},
	}, results)
	assert.Equal(t, map[string]string{"b.txt": "from a2"}, testutil.Snapshot(t, dir))
}

func TestRename_NestedThreeLevels(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"level1/level2/level3/photo9.jpg": "deep",
		"level1/photo5.jpg":               "shallow",
		"level1/level2/readme.md":         "docs",
	})

	results, err := newOSRenamer().RenameAll(dir, "photo*.jpg", "img_*.jpg")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, map[string]string{
		"level1/level2/level3/img_9.jpg": "deep",
		"level1/img_5.jpg":               "shallow",
		"level1/level2/readme.md":        "docs",
	}, testutil.Snapshot(t, dir))

	// Renames stay within the directory the file was found in
	assert.Equal(t, filepath.Join(dir, "level1", "level2", "level3"), results[1].Dir)
	assert.Equal(t, filepath.Join(dir, "level1", "level2", "level3", "img_9.jpg"), results[1].NewPath())
}

func TestRename_PreOrderRootFirst(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"z.log":       "",
		"a/b.log":     "",
		"a/c/d.log":   "",
		"b/e.log":     "",
		"a/a_top.log": "",
	})

	results, err := newOSRenamer().RenameAll(dir, "*.log", "*.txt")
	require.NoError(t, err)

	var visited []string
	for _, r := range results {
		rel, err := filepath.Rel(dir, r.OldPath())
		require.NoError(t, err)
		visited = append(visited, filepath.ToSlash(rel))
	}

	assert.Equal(t, []string{
		"z.log",
		"a/a_top.log",
		"a/b.log",
		"a/c/d.log",
		"b/e.log",
	}, visited)
}

func TestRename_RerunIsNoOp(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"photo1.jpg": "first",
		"notes.txt":  "keep",
	})
	r := newOSRenamer()

	first, err := r.RenameAll(dir, "photo*.jpg", "img_*.jpg")
	require.NoError(t, err)
	require.Len(t, first, 1)
	after := testutil.Snapshot(t, dir)

	second, err := r.RenameAll(dir, "photo*.jpg", "img_*.jpg")
	require.NoError(t, err)
	assert.Empty(t, second)
	assert.Equal(t, after, testutil.Snapshot(t, dir))
}

func TestRename_SwappedPatternsReverse(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFile(t, dir, "foo", "content")
	r := newOSRenamer()

	_, err := r.RenameAll(dir, "foo", "bar")
	require.NoError(t, err)
	_, err = r.RenameAll(dir, "bar", "foo")
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"foo": "content"}, testutil.Snapshot(t, dir))
}

func TestRename_NonMatchingFilesUntouched(t *testing.T) {
	dir := testutil.TempDir(t)
	files := map[string]string{
		"notes.txt":        "some\x00binary\xffbytes",
		"photo1.jpeg":      "wrong extension",
		"sub/myphoto1.jpg": "prefix mismatch",
		"sub/PHOTO1.jpg":   "case mismatch",
	}
	testutil.CreateFiles(t, dir, files)

	before := map[string]os.FileInfo{}
	for name := range files {
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		require.NoError(t, err)
		before[name] = info
	}

	results, err := newOSRenamer().RenameAll(dir, "photo*.jpg", "img_*.jpg")
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.Equal(t, files, testutil.Snapshot(t, dir))
	for name, info := range before {
		after, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		require.NoError(t, err)
		assert.True(t, os.SameFile(info, after), "%s should be the same file", name)
		assert.Equal(t, info.ModTime(), after.ModTime())
	}
}

func TestRename_RegexMetacharactersAreLiteral(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"report (v2) [final].txt": "match",
		"report Xv2) [final].txt": "no match",
		"a+b.txt":                 "plus",
		"aab.txt":                 "not plus",
	})

	results, err := newOSRenamer().RenameAll(dir, "report (v*) [final].txt", "report-v*.txt")
	require.NoError(t, err)
	require.Len(t, results, 1)

	results, err = newOSRenamer().RenameAll(dir, "a+b.txt", "a-plus-b.txt")
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, map[string]string{
		"report-v2.txt":           "match",
		"report Xv2) [final].txt": "no match",
		"a-plus-b.txt":            "plus",
		"aab.txt":                 "not plus",
	}, testutil.Snapshot(t, dir))
}

func TestRename_WildcardOnlyInReplacement(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFile(t, dir, "draft.doc", "d")

	results, err := newOSRenamer().RenameAll(dir, "draft.doc", "final*.doc")
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.Equal(t, "final.doc", results[0].NewName)
}

func TestRename_EmptyPatternMatchesNothing(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFile(t, dir, "notes.txt", "n")

	results, err := newOSRenamer().RenameAll(dir, "", "x")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRename_InvalidTargetNames(t *testing.T) {
	tests := []struct {
		name     string
		pattern2 string
	}{
		{"empty target", ""},
		{"dot target", "."},
		{"dot dot target", ".."},
		{"path separator", "sub/*.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.TempDir(t)
			testutil.CreateFile(t, dir, "a.txt", "a")

			results, err := newOSRenamer().RenameAll(dir, "*.txt", tt.pattern2)

			require.Error(t, err)
			assert.Empty(t, results)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRenameFailure))
			assert.ErrorIs(t, err, errors.New(errors.ErrInvalidName, ""))

			details := errors.GetErrorDetails(err)
			assert.Equal(t, "a.txt", details["old"])
			assert.Equal(t, map[string]string{"a.txt": "a"}, testutil.Snapshot(t, dir))
		})
	}
}

func TestRename_FailFastLeavesEarlierRenames(t *testing.T) {
	testutil.SkipOnWindows(t)
	testutil.RequireNonRoot(t)

	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"a/photo1.jpg": "one",
		"b/photo2.jpg": "two",
		"c/photo3.jpg": "three",
	})
	locked := filepath.Join(dir, "b")
	require.NoError(t, os.Chmod(locked, 0555))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	results, err := newOSRenamer().RenameAll(dir, "photo*.jpg", "img_*.jpg")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenameFailure))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, []types.RenameResult{
		{Dir: filepath.Join(dir, "a"), OldName: "photo1.jpg", NewName: "img_1.jpg"},
	}, results)

	assert.Equal(t, map[string]string{
		"a/img_1.jpg":  "one",
		"b/photo2.jpg": "two",
		"c/photo3.jpg": "three",
	}, testutil.Snapshot(t, dir))
}

func TestRename_SymlinksNotFollowed(t *testing.T) {
	testutil.SkipOnWindows(t)

	dir := testutil.TempDir(t)
	outside := testutil.TempDir(t)
	testutil.CreateFile(t, outside, "photo7.jpg", "outside")
	testutil.CreateFile(t, dir, "real/photo1.jpg", "inside")
	testutil.CreateFile(t, dir, "target.bin", "t")

	// Directory links, including a cycle back to the root, are skipped
	testutil.CreateSymlink(t, outside, filepath.Join(dir, "photos-link"))
	testutil.CreateSymlink(t, dir, filepath.Join(dir, "real", "loop"))
	// A link to a file is renamed like a file
	testutil.CreateSymlink(t, "target.bin", filepath.Join(dir, "photo2.jpg"))

	results, err := newOSRenamer().RenameAll(dir, "photo*.jpg", "img_*.jpg")
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, map[string]string{"photo7.jpg": "outside"}, testutil.Snapshot(t, outside))
	snap := testutil.Snapshot(t, dir)
	assert.Equal(t, "-> target.bin", snap["img_2.jpg"])
	assert.Equal(t, "inside", snap["real/img_1.jpg"])
}

func TestRename_IteratorIsLazy(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFiles(t, dir, map[string]string{
		"photo1.jpg": "1",
		"photo2.jpg": "2",
		"photo3.jpg": "3",
	})

	seq := newOSRenamer().Rename(dir, "photo*.jpg", "img_*.jpg")

	// Nothing happens until the sequence is consumed
	assert.Len(t, testutil.Snapshot(t, dir), 3)
	assert.True(t, testutil.FileExists(t, filepath.Join(dir, "photo1.jpg")))

	for result, err := range seq {
		require.NoError(t, err)
		assert.Equal(t, "img_1.jpg", result.NewName)
		break
	}

	assert.Equal(t, map[string]string{
		"img_1.jpg":  "1",
		"photo2.jpg": "2",
		"photo3.jpg": "3",
	}, testutil.Snapshot(t, dir))
}

func TestRename_PackageLevelUsesOS(t *testing.T) {
	dir := testutil.TempDir(t)
	testutil.CreateFile(t, dir, "photo1.jpg", "x")

	var got []types.RenameResult
	for result, err := range Rename(dir, "photo*.jpg", "img_*.jpg") {
		require.NoError(t, err)
		got = append(got, result)
	}

	require.Len(t, got, 1)
	testutil.AssertFileContent(t, filepath.Join(dir, "img_1.jpg"), "x")
}

func TestRename_MemoryFS_CaptureModes(t *testing.T) {
	tests := []struct {
		name string
		mode pattern.CaptureMode
		want map[string]string
	}{
		{
			name: "first capture fills every wildcard",
			mode: pattern.CaptureFirst,
			want: map[string]string{
				"2024_2024.txt":        "r",
				"2023_2023.txt":        "s",
				"nested/2022_2022.txt": "l",
				"nested/README":        "readme",
			},
		},
		{
			name: "positional captures fill wildcards in order",
			mode: pattern.CapturePositional,
			want: map[string]string{
				"2024_report.txt":     "r",
				"2023_summary.txt":    "s",
				"nested/2022_log.txt": "l",
				"nested/README":       "readme",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, fsys := testutil.NewTestFS()
			testutil.FSCreateFiles(t, mem, "/data", map[string]string{
				"2024-report.txt":     "r",
				"2023-summary.txt":    "s",
				"nested/2022-log.txt": "l",
				"nested/README":       "readme",
			})

			results, err := New(Options{FS: fsys, CaptureMode: tt.mode}).RenameAll("/data", "*-*.txt", "*_*.txt")
			require.NoError(t, err)
			assert.Len(t, results, 3)

			assert.Equal(t, tt.want, testutil.FSSnapshot(t, mem, "/data"))
		})
	}
}

func TestValidateDirectory(t *testing.T) {
	mem, fsys := testutil.NewTestFS()
	testutil.FSCreateFiles(t, mem, "/data", map[string]string{"file.txt": "x"})

	assert.NoError(t, ValidateDirectory(fsys, "/data"))

	err := ValidateDirectory(fsys, "/missing")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDirectory))
	assert.ErrorIs(t, err, os.ErrNotExist)

	err = ValidateDirectory(fsys, "/data/file.txt")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidDirectory))
}

func TestRename_IdentityRenameIsYieldedWithoutTouchingFile(t *testing.T) {
	dir := testutil.TempDir(t)
	path := testutil.CreateFile(t, dir, "same.txt", "content")
	before, err := os.Stat(path)
	require.NoError(t, err)

	results, err := newOSRenamer().RenameAll(dir, "same.txt", "same.txt")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "same.txt", results[0].OldName)
	assert.Equal(t, "same.txt", results[0].NewName)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, os.SameFile(before, after))
}

func TestRename_FailFastOnMemoryFS(t *testing.T) {
	mem, inner := testutil.NewTestFS()
	fsys := testutil.NewFaultFS(inner)
	testutil.FSCreateFiles(t, mem, "/data", map[string]string{
		"a1.txt":     "1",
		"a2.txt":     "2",
		"a3.txt":     "3",
		"sub/a4.txt": "4",
	})
	fsys.WithRenameError("/data/a2.txt", os.ErrPermission)

	results, err := New(Options{FS: fsys}).RenameAll("/data", "a*.txt", "b*.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRenameFailure))
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, "a2.txt", errors.GetErrorDetails(err)["old"])

	require.Len(t, results, 1)
	assert.Equal(t, "b1.txt", results[0].NewName)

	assert.Equal(t, map[string]string{
		"b1.txt":     "1",
		"a2.txt":     "2",
		"a3.txt":     "3",
		"sub/a4.txt": "4",
	}, testutil.FSSnapshot(t, mem, "/data"))

	renames, _ := fsys.Stats()
	assert.Equal(t, 2, renames, "nothing is attempted after the failure")
}

func TestRename_WalkFailureStopsIteration(t *testing.T) {
	mem, inner := testutil.NewTestFS()
	fsys := testutil.NewFaultFS(inner)
	testutil.FSCreateFiles(t, mem, "/data", map[string]string{
		"a.txt":       "root",
		"bad/a.txt":   "bad",
		"later/a.txt": "later",
	})
	fsys.WithReadDirError("/data/bad", os.ErrPermission)

	results, err := New(Options{FS: fsys}).RenameAll("/data", "a.txt", "b.txt")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWalkFailure))

	require.Len(t, results, 1)
	assert.Equal(t, "/data", results[0].Dir)

	snap := testutil.FSSnapshot(t, mem, "/data")
	assert.Equal(t, "root", snap["b.txt"])
	assert.Equal(t, "later", snap["later/a.txt"])
}

func TestRename_IdentityRenameSkipsFilesystem(t *testing.T) {
	mem, inner := testutil.NewTestFS()
	fsys := testutil.NewFaultFS(inner)
	testutil.FSCreateFiles(t, mem, "/data", map[string]string{"same.txt": "x"})

	results, err := New(Options{FS: fsys}).RenameAll("/data", "same.txt", "same.txt")
	require.NoError(t, err)
	require.Len(t, results, 1)

	renames, readDirs := fsys.Stats()
	assert.Equal(t, 0, renames)
	assert.Equal(t, 1, readDirs)
}
