package analysis

import "log/slog"

// GuardSection runs a section builder and enforces the never-throw contract:
// an error or panic is logged as a recoverable warning and the section
// degrades to the empty string, which assembly filters out.
func GuardSection(log *slog.Logger, name string, fn func() (string, error)) (section string) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn("section generation panicked",
				"section", name,
				"panic", r,
			)
			section = ""
		}
	}()

	s, err := fn()
	if err != nil {
		log.Warn("section generation failed",
			"section", name,
			"error", err,
		)
		return ""
	}
	return s
}
