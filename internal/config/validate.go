package config

import (
	"errors"
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

func validationError(res Validation) error {
	return errors.New("config validation failed:\n- " + strings.Join(res.Errors, "\n- "))
}

// NormalizeAndValidate fills defaults on a loaded config and reports what
// can't be defaulted away.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.Input.CSVPath = strings.TrimSpace(out.Input.CSVPath)
	out.Input.IdentifierColumn = strings.TrimSpace(out.Input.IdentifierColumn)
	out.Input.URLColumn = strings.TrimSpace(out.Input.URLColumn)
	out.Output.Path = strings.TrimSpace(out.Output.Path)
	out.Crawl.UserAgent = strings.TrimSpace(out.Crawl.UserAgent)

	// ---- Defaults ----

	if out.Crawl.Concurrency == 0 {
		out.Crawl.Concurrency = 1
	}
	if out.Crawl.TimeoutSeconds == 0 {
		out.Crawl.TimeoutSeconds = 20
	}
	if out.Crawl.PerHostRPS == 0 {
		out.Crawl.PerHostRPS = 2
	}
	if out.Crawl.Burst == 0 {
		out.Crawl.Burst = 1
	}
	if out.Cache.TTLHours == 0 {
		out.Cache.TTLHours = 24
	}
	if out.Output.Path == "" {
		out.Output.Path = "companies.json"
	}

	// ---- Validation rules ----

	if out.Input.CSVPath == "" {
		res.addErr("input.csv_path is required")
	}

	if out.Crawl.Concurrency < 0 {
		res.addErr("crawl.concurrency must be >= 1")
	} else if out.Crawl.Concurrency > 16 {
		res.addWarn("crawl.concurrency is very high (%d); the target site may throttle you.", out.Crawl.Concurrency)
	}

	if out.Crawl.TimeoutSeconds < 0 {
		res.addErr("crawl.timeout_seconds must be > 0")
	}
	if out.Crawl.Retries < 0 {
		res.addErr("crawl.retries must be >= 0")
	}
	if out.Crawl.PerHostRPS < 0 {
		res.addErr("crawl.per_host_rps must be > 0")
	} else if out.Crawl.PerHostRPS > 10 {
		res.addWarn("crawl.per_host_rps is aggressive (%.1f); consider lowering it.", out.Crawl.PerHostRPS)
	}

	if out.Cache.TTLHours < 0 {
		res.addErr("cache.ttl_hours must be >= 0")
	}

	return out, res
}
