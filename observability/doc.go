// Package observability wires OpenTelemetry tracing and request metrics.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("puzzle"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "httpclient.execute")
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("puzzle"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("puzzle"))
//	metrics.RecordRequest(ctx, "GET", observability.OutcomeSuccess, elapsed)
//
// Setup initializes both from a single Config and returns one shutdown func.
package observability
