package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	type args struct {
		args            []string
		caseInsensitive bool
	}
	tests := []struct {
		name    string
		args    args
		want    Config
		wantErr error
	}{
		{
			name:    "no arguments",
			args:    args{args: nil},
			wantErr: ErrNotEnoughArguments,
		},
		{
			name:    "program name only",
			args:    args{args: []string{"prog"}},
			wantErr: ErrNotEnoughArguments,
		},
		{
			name:    "query without filename",
			args:    args{args: []string{"prog", "tape"}},
			wantErr: ErrNotEnoughArguments,
		},
		{
			name: "query and filename",
			args: args{args: []string{"prog", "tape", "poem.txt"}},
			want: Config{Query: "tape", Filename: "poem.txt", CaseSensitive: true},
		},
		{
			name: "extra arguments ignored",
			args: args{args: []string{"prog", "tape", "poem.txt", "other.txt"}},
			want: Config{Query: "tape", Filename: "poem.txt", CaseSensitive: true},
		},
		{
			name: "verbatim values",
			args: args{args: []string{"prog", "  -x ", " poem.txt"}},
			want: Config{Query: "  -x ", Filename: " poem.txt", CaseSensitive: true},
		},
		{
			name: "case insensitive",
			args: args{args: []string{"prog", "tape", "poem.txt"}, caseInsensitive: true},
			want: Config{Query: "tape", Filename: "poem.txt", CaseSensitive: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.args.args, tt.args.caseInsensitive)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Config{}, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaseInsensitive(t *testing.T) {
	env := func(vars map[string]string) LookupFunc {
		return func(key string) (string, bool) {
			v, ok := vars[key]
			return v, ok
		}
	}

	tests := []struct {
		name   string
		lookup LookupFunc
		want   bool
	}{
		{name: "unset", lookup: env(map[string]string{}), want: false},
		{name: "other variable", lookup: env(map[string]string{"CASE_SENSITIVE": "1"}), want: false},
		{name: "set", lookup: env(map[string]string{CaseInsensitiveEnv: "1"}), want: true},
		{name: "set to empty", lookup: env(map[string]string{CaseInsensitiveEnv: ""}), want: true},
		{name: "set to false", lookup: env(map[string]string{CaseInsensitiveEnv: "false"}), want: true},
		{name: "nil lookup", lookup: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CaseInsensitive(tt.lookup))
		})
	}
}
