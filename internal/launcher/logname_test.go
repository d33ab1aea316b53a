package launcher

import (
	"testing"
	"time"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

func TestLogFileName(t *testing.T) {
	ts := time.Date(2019, 11, 22, 14, 30, 5, 0, time.UTC)

	tests := []struct {
		name string
		inv  models.Invocation
		want string
	}{
		{
			name: "plain branch",
			inv:  models.Invocation{Fork: "emc", Branch: "develop", Site: "hera", Compiler: "intel"},
			want: "autoregtest_emc_develop_hera_intel_20191122T143005.log",
		},
		{
			name: "slash in branch is mapped",
			inv:  models.Invocation{Fork: "dtc", Branch: "dtc/develop", Site: "cheyenne", Compiler: "gnu"},
			want: "autoregtest_dtc_dtc-develop_cheyenne_gnu_20191122T143005.log",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogFileName("autoregtest", tt.inv, ts)
			if got != tt.want {
				t.Errorf("LogFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLogFileNameDeterministic(t *testing.T) {
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	inv := models.Invocation{Fork: "emc", Branch: "develop", Site: "hera", Compiler: "intel"}

	a := LogFileName("autoregtest", inv, ts)
	b := LogFileName("autoregtest", inv, ts)
	if a != b {
		t.Errorf("same descriptor and timestamp produced %q and %q", a, b)
	}
}

func TestLogFileNameUniquePerSecond(t *testing.T) {
	inv := models.Invocation{Fork: "emc", Branch: "develop", Site: "hera", Compiler: "intel"}
	ts := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

	a := LogFileName("autoregtest", inv, ts)
	b := LogFileName("autoregtest", inv, ts.Add(time.Second))
	if a == b {
		t.Errorf("distinct timestamps produced the same name %q", a)
	}
}
