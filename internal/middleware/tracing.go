package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

// RequestTiming cria um span OpenTelemetry para cada requisição HTTP
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// Extrai o contexto de trace dos headers e abre o span da requisição
		ctx := otel.GetTextMapPropagator().Extract(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		ctx, span := otel.Tracer("http").Start(ctx, "http.request")
		defer span.End()

		// Atributos da requisição
		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.url", c.Request.URL.String()),
			attribute.String("http.route", c.FullPath()),
			attribute.String("http.user_agent", c.Request.UserAgent()),
			attribute.String("http.client_ip", c.ClientIP()),
			attribute.String("http.request_id", GetRequestID(c)),
		)

		// Propaga o span para os handlers
		c.Request = c.Request.WithContext(ctx)
		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		// Atributos da resposta
		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", duration.Milliseconds()),
			attribute.Int("http.response_size", c.Writer.Size()),
		)

		// Marca erro para status 5xx
		if status >= 500 {
			span.SetStatus(codes.Error, "HTTP request failed")
		} else {
			span.SetStatus(codes.Ok, "")
		}
		// Mensagem de erro, se houver
		if len(c.Errors) > 0 {
			span.SetAttributes(attribute.String("http.error_message", c.Errors.String()))
		}
	}
}
