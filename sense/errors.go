// Package sense implements field-of-view and lighting propagation over a
// resistance grid: per-source recursive shadowcasting and ripple-flood
// algorithms, aggregated into a shared result view by a sense map.
//
// Grounded on the teacher's rl.FOV (struct-holds-buffer, template-method
// Calculate/CalculateLight split) for the package's overall shape; the
// propagation algorithms themselves are built from spec.md sections
// 4.17-4.20 directly, since no pack repository implements recursive
// shadowcasting or ripple lighting.
package sense

// ConfigError reports an out-of-domain parameter passed to a sense-source
// or sense-map constructor or setter.
type ConfigError struct {
	Param   string
	Message string
}

func (e *ConfigError) Error() string {
	return "sense: " + e.Param + ": " + e.Message
}
