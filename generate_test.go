package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tsbridge/tsbridge/pkg/action/generate"
	"github.com/tsbridge/tsbridge/pkg/action/snapshot"
	"github.com/tsbridge/tsbridge/pkg/manifest"
)

const fixtureDir = "test/testdata/fixtures/models"

func TestGenerate(t *testing.T) {
	tests := []struct {
		name       string
		params     generate.Params
		want       []string
		wantAbsent []string
	}{
		{
			name:   "generate with defaults",
			params: generate.Params{InDir: fixtureDir},
			want: []string{
				"export enum Status {",
				"\tStatusPending = 0,",
				"\tStatusActive = 1,",
				"\tStatusClosed = 2,",
				"export interface Audited {",
				"export interface Account extends Audited {",
				"\tName: string;",
				"\tStatus: Status;",
				"\tBalance?: number;",
				"\tTags: Array<string>;",
				"\tAttrs: { [key: string]: number };",
				"\tOwner?: User;",
				"export interface Page<T> {",
				"\tItems: Array<T>;",
				"\tPage: Page<Account>;",
				"\tMore: Page<User>;",
			},
			wantAbsent: []string{"Internal"},
		},
		{
			name:   "generate with classes",
			params: generate.Params{InDir: fixtureDir, Classes: true},
			want: []string{
				"export class Account extends Audited {",
				"export class Page<T> {",
			},
		},
		{
			name:   "generate with date mapping",
			params: generate.Params{InDir: fixtureDir, UseDate: true},
			want:   []string{"\tCreatedAt: Date;"},
		},
		{
			name:   "generate with skip patterns",
			params: generate.Params{InDir: fixtureDir, Types: []string{"Account"}, Skip: []string{"User"}},
			want: []string{
				"export interface Account extends Audited {",
				"\tOwner?: any;",
			},
			wantAbsent: []string{"export interface User"},
		},
		{
			name:   "generate selected roots only",
			params: generate.Params{InDir: fixtureDir, Types: []string{"Status"}},
			want:   []string{"export enum Status {"},
			wantAbsent: []string{
				"export interface Account",
				"export interface AccountPage",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.OutDir = t.TempDir()
			out, err := generate.Run(&tt.params)
			require.NoError(t, err)

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			body := string(data)

			for _, want := range tt.want {
				require.Contains(t, body, want)
			}
			for _, absent := range tt.wantAbsent {
				require.NotContains(t, body, absent)
			}
		})
	}
}

func TestGenerateCustomTemplate(t *testing.T) {
	dir := t.TempDir()
	tmplPath := filepath.Join(dir, "banner.tmpl")
	require.NoError(t, os.WriteFile(tmplPath, []byte("// generated\n{{range .Types}}{{.Header}}\n{{end}}"), 0o644))

	out, err := generate.Run(&generate.Params{
		InDir:        fixtureDir,
		OutDir:       dir,
		TemplateFile: tmplPath,
		Types:        []string{"Account"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "// generated\n")
	require.Contains(t, string(data), "export interface Account extends Audited\n")
}

func TestGenerateNoRoots(t *testing.T) {
	_, err := generate.Run(&generate.Params{
		InDir:  fixtureDir,
		OutDir: t.TempDir(),
		Types:  []string{"NoSuchType"},
	})
	require.Error(t, err)
}

func TestSnapshotLifecycle(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "manifest.yaml")

	params := &generate.Params{InDir: fixtureDir, OutDir: dir, OutFile: "v1.d.ts", Types: []string{"Audited"}}
	_, err := snapshot.Take(params, manifestPath, "v1")
	require.NoError(t, err)

	params = &generate.Params{InDir: fixtureDir, OutDir: dir, OutFile: "v2.d.ts", Types: []string{"Account"}}
	_, err = snapshot.Take(params, manifestPath, "v2")
	require.NoError(t, err)

	m, err := manifest.Load(manifestPath)
	require.NoError(t, err)
	require.Equal(t, "v2", m.Current)
	require.Equal(t, "v1", m.Previous)
	require.Len(t, m.Entries, 2)

	diff, err := snapshot.DiffCurrentWithPrevious(manifestPath)
	require.NoError(t, err)
	require.NotEmpty(t, diff)
}

func TestSnapshotRequiresVersion(t *testing.T) {
	_, err := snapshot.Take(&generate.Params{InDir: fixtureDir, OutDir: t.TempDir()}, filepath.Join(t.TempDir(), "m.yaml"), "")
	require.Error(t, err)
}
