package models

import "testing"

func TestMatrixResolve(t *testing.T) {
	matrix := NewDefaultMatrix()

	tests := []struct {
		name    string
		inv     Invocation
		want    Invocation
		wantErr bool
	}{
		{
			name: "explicit everything",
			inv:  Invocation{Fork: "dtc", Branch: "dtc/develop", Site: "cheyenne", Compiler: "gnu", RTConfig: "rt_custom.conf", Project: "P123"},
			want: Invocation{Fork: "dtc", Branch: "dtc/develop", Site: "cheyenne", Compiler: "gnu", RTConfig: "rt_custom.conf", Project: "P123"},
		},
		{
			name: "site defaults fill in",
			inv:  Invocation{Fork: "emc", Branch: "develop", Site: "hera"},
			want: Invocation{Fork: "emc", Branch: "develop", Site: "hera", Compiler: "intel", RTConfig: "rt.conf", Project: "gmtb"},
		},
		{
			name: "email passes through untouched",
			inv:  Invocation{Fork: "emc", Branch: "develop", Site: "hera", Email: "ops@example.org"},
			want: Invocation{Fork: "emc", Branch: "develop", Site: "hera", Compiler: "intel", RTConfig: "rt.conf", Project: "gmtb", Email: "ops@example.org"},
		},
		{
			name: "rtconfig follows compiler",
			inv:  Invocation{Fork: "dtc", Branch: "dtc/develop", Site: "cheyenne", Compiler: "gnu"},
			want: Invocation{Fork: "dtc", Branch: "dtc/develop", Site: "cheyenne", Compiler: "gnu", RTConfig: "rt_gnu.conf", Project: "P48503002"},
		},
		{
			name:    "unknown fork",
			inv:     Invocation{Fork: "nobody", Branch: "develop", Site: "hera"},
			wantErr: true,
		},
		{
			name:    "branch not configured for fork",
			inv:     Invocation{Fork: "dtc", Branch: "develop", Site: "hera"},
			wantErr: true,
		},
		{
			name:    "unknown site",
			inv:     Invocation{Fork: "emc", Branch: "develop", Site: "summit"},
			wantErr: true,
		},
		{
			name:    "compiler not available on site",
			inv:     Invocation{Fork: "emc", Branch: "develop", Site: "hera", Compiler: "gnu"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matrix.Resolve(tt.inv)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%+v) = %+v, want error", tt.inv, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%+v) returned error: %v", tt.inv, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%+v) = %+v, want %+v", tt.inv, got, tt.want)
			}
		})
	}
}

func TestMatrixResolveDoesNotMutate(t *testing.T) {
	matrix := NewDefaultMatrix()
	before := len(matrix.Sites["hera"].Compilers)

	_, err := matrix.Resolve(Invocation{Fork: "emc", Branch: "develop", Site: "hera"})
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if len(matrix.Sites["hera"].Compilers) != before {
		t.Error("Resolve mutated the matrix")
	}
}
