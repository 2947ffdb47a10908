package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Logger variables
const (
	TagPid               = "pid"
	TagLatency           = "latency"
	TagStatus            = "status"
	TagIP                = "ip"
	TagIPs               = "ips"
	TagHost              = "host"
	TagMethod            = "method"
	TagPath              = "path"
	TagURL               = "url"
	TagUA                = "ua"
	TagBody              = "body"
	TagBytesReceived     = "bytes_received"
	TagBytesSent         = "bytes_sent"
	TagRoute             = "route"
	TagResBody           = "res_body"
	TagQueryStringParams = "query_params"
	RequestID            = "request_id"
)

// FuncTag returns value for tag
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// тело ответа больше этого размера в лог не пишем
const maxLoggedBodySize = 4096

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagIPs: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderXForwardedFor)
		},
		TagHost: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Hostname()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, _ *data) interface{} {
			return c.OriginalURL()
		},
		TagUA: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			return limitBody(c.Body())
		},
		TagBytesReceived: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Request().Body())
		},
		TagBytesSent: func(c *fiber.Ctx, _ *data) interface{} {
			return len(c.Response().Body())
		},
		TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Route().Path
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			contentType := string(c.Response().Header.ContentType())
			if contentType != fiber.MIMEApplicationJSON && contentType != fiber.MIMEApplicationJSONCharsetUTF8 {
				return ""
			}
			return limitBody(c.Response().Body())
		},
		TagQueryStringParams: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Request().URI().QueryArgs().String()
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			if id, ok := c.Locals("requestid").(string); ok {
				return id
			}
			return ""
		},
	}

	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func limitBody(body []byte) string {
	if len(body) > maxLoggedBodySize {
		return string(body[:maxLoggedBodySize]) + "..."
	}
	return string(body)
}
