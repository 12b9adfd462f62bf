package telemetry

import "errors"

var (
	ErrExporter = errors.New("telemetry.exporter")
	ErrResource = errors.New("telemetry.resource")
)
