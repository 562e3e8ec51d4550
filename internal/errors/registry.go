package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (E001-E009)
	// ============================================

	"E001": {
		Category: CategoryRuntime,
		Message:  "Hook called outside component render",
		Detail:   "UseMemo, UseOnce and UseOptions keep their state in the owning component. Call them between Owner.StartRender and Owner.EndRender, or inside Owner.Render.",
		DocURL:   "https://vango.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRuntime,
		Message:  "Hook order changed",
		Detail:   "Hooks must be called in the same order on every render. Do not call hooks inside conditions or loops whose length changes.",
		DocURL:   "https://vango.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRuntime,
		Message:  "Hook slot type mismatch",
		Detail:   "The hook at this position stored a value of a different type on a previous render. This usually means hooks were reordered.",
		DocURL:   "https://vango.dev/docs/errors/E003",
	},

	// ============================================
	// Options Errors (E010-E019)
	// ============================================

	"E010": {
		Category: CategoryOptions,
		Message:  "Default options missing",
		Detail:   "The defaults map enumerates every recognized option and may not be nil.",
		DocURL:   "https://vango.dev/docs/errors/E010",
	},

	// ============================================
	// Config Errors (E020-E029)
	// ============================================

	"E020": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "reconcile.json could not be parsed or contains invalid values.",
		DocURL:   "https://vango.dev/docs/errors/E020",
	},

	// ============================================
	// Input Errors (E030-E039)
	// ============================================

	"E030": {
		Category: CategoryInput,
		Message:  "Invalid input document",
		Detail:   "The input could not be decoded. Node lists must be JSON arrays of objects and options must be JSON objects.",
		DocURL:   "https://vango.dev/docs/errors/E030",
	},
}

// GetAllCodes returns all registered error codes, sorted.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a custom error template.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
