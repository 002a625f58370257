package reload

import (
	"github.com/afkctl/afk/pkg/config"
)

// ConfigDiff represents the differences between two versions of the config.
type ConfigDiff struct {
	// ReasonChanged is the only change a running banner can apply.
	ReasonChanged bool
	OldReason     string
	NewReason     string

	// RestartRequired names the changed settings that only take effect on
	// the next run.
	RestartRequired []string
}

// IsEmpty returns true if there are no changes.
func (d *ConfigDiff) IsEmpty() bool {
	return !d.ReasonChanged && len(d.RestartRequired) == 0
}

// ComputeDiff computes the differences between two configurations. A nil
// old config is compared as the defaults.
func ComputeDiff(old, new *config.Config) *ConfigDiff {
	if old == nil {
		old = config.Default()
	}

	diff := &ConfigDiff{
		OldReason: old.Reason,
		NewReason: new.Reason,
	}
	diff.ReasonChanged = old.Reason != new.Reason

	changed := func(field string, differs bool) {
		if differs {
			diff.RestartRequired = append(diff.RestartRequired, field)
		}
	}
	changed("without-color", old.WithoutColor != new.WithoutColor)
	changed("without-timestamp", old.WithoutTimestamp != new.WithoutTimestamp)
	changed("speed", old.Speed != new.Speed)
	changed("gap", old.Gap != new.Gap)
	changed("summary", old.Summary != new.Summary)
	changed("log", old.Log != new.Log)

	return diff
}
