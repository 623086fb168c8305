package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/core/domain"
)

func TestTypeOfPath(t *testing.T) {
	tests := []struct {
		path string
		want domain.InputType
	}{
		{"a.src", domain.InputTypeSource},
		{"sub/dir/b.src", domain.InputTypeSource},
		{"mod.iface", domain.InputTypeInterface},
		{"logo.res", domain.InputTypeResource},
		{"README.md", domain.InputTypeUnknown},
		{"noext", domain.InputTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, domain.TypeOfPath(tt.path))
		})
	}
}

func TestInput_Compiles(t *testing.T) {
	require.True(t, domain.NewInput("a.src").Compiles())
	require.False(t, domain.NewInput("a.iface").Compiles())
	require.False(t, domain.NewInput("a.res").Compiles())
}

func TestInput_Basename(t *testing.T) {
	in := domain.NewInput("pkg/nested/main.src")
	require.Equal(t, "main.src", in.Basename())
}

func TestInput_Comparable(t *testing.T) {
	// Inputs intern their paths, so equal paths produce equal map keys.
	a1 := domain.NewInput("a.src")
	a2 := domain.NewInput("a.src")
	require.Equal(t, a1, a2)

	m := map[domain.Input]bool{a1: true}
	require.True(t, m[a2])
}

func TestSortInputs(t *testing.T) {
	inputs := []domain.Input{
		domain.NewInput("c.src"),
		domain.NewInput("a.src"),
		domain.NewInput("b.src"),
	}
	domain.SortInputs(inputs)

	got := make([]string, len(inputs))
	for i, in := range inputs {
		got[i] = in.String()
	}
	require.Equal(t, []string{"a.src", "b.src", "c.src"}, got)
}

func TestInputStatus_RoundTrip(t *testing.T) {
	statuses := []domain.InputStatus{
		domain.StatusUpToDate,
		domain.StatusNewlyAdded,
		domain.StatusNeedsCascadingBuild,
		domain.StatusNeedsNonCascadingBuild,
	}

	for _, s := range statuses {
		parsed, ok := domain.ParseInputStatus(s.String())
		require.True(t, ok, s.String())
		require.Equal(t, s, parsed)
	}

	_, ok := domain.ParseInputStatus("bogus")
	require.False(t, ok)
}

func TestBuildRecord_Lookups(t *testing.T) {
	a := domain.NewInput("a.src")
	b := domain.NewInput("b.src")
	now := time.Now()

	rec := &domain.BuildRecord{
		BuildTime: now,
		InputInfos: map[domain.InternedPath]domain.InputInfo{
			a.Path: {Status: domain.StatusUpToDate, PreviousModTime: now.Add(-time.Hour)},
		},
		InputModTimes: map[domain.Input]time.Time{
			a: now.Add(-time.Minute),
		},
	}

	info, ok := rec.Info(a)
	require.True(t, ok)
	require.Equal(t, domain.StatusUpToDate, info.Status)

	_, ok = rec.Info(b)
	require.False(t, ok)

	mt, ok := rec.ModTime(a)
	require.True(t, ok)
	require.Equal(t, now.Add(-time.Minute), mt)

	_, ok = rec.ModTime(b)
	require.False(t, ok)
}

func TestDependencySummary_InterfaceDigest(t *testing.T) {
	s1 := &domain.DependencySummary{Provides: []string{"foo", "bar"}}
	s2 := &domain.DependencySummary{Provides: []string{"bar", "foo"}}
	s3 := &domain.DependencySummary{Provides: []string{"foo", "baz"}}

	// Digest is order-independent over the provided names.
	require.Equal(t, s1.InterfaceDigest(), s2.InterfaceDigest())
	require.NotEqual(t, s1.InterfaceDigest(), s3.InterfaceDigest())

	// Depends and Externals do not affect the interface digest.
	s4 := &domain.DependencySummary{Provides: []string{"foo", "bar"}, Depends: []string{"x"}, Externals: []string{"/usr/include/y.h"}}
	require.Equal(t, s1.InterfaceDigest(), s4.InterfaceDigest())
}

func TestNewCompileJob(t *testing.T) {
	in := domain.NewInput("a.src")
	job := domain.NewCompileJob(in, "out/a.o", ".ripple/deps/a.d.yaml")

	require.Equal(t, domain.JobKindCompile, job.Kind)
	require.Equal(t, []domain.Input{in}, job.Primaries)
	require.Equal(t, "out/a.o", job.Object)
}
