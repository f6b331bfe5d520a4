// Package prompts resolves named prompt templates from a cache, a remote
// prompt store, or a compiled-in fallback table, in that priority order.
//
// Resolution never fails: every error path degrades to a usable template.
package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/howaiconnects/seogate/config"
	"github.com/howaiconnects/seogate/internal/logger"
)

// Variables maps placeholder names to substitution values.
// Strings are inserted as-is, string slices are comma-joined, anything
// else is rendered as indented JSON.
type Variables map[string]any

// Resolver resolves prompt templates. The mode is fixed at construction:
// with prompt-store credentials it fetches remotely and caches, without
// them it serves only the fallback table.
type Resolver struct {
	cache  *Cache
	client *Client // nil in fallback mode
}

// NewResolver creates a resolver. Connected mode requires both an API key
// and a project id; anything less selects fallback mode.
func NewResolver(cfg config.LatitudeConfig) *Resolver {
	r := &Resolver{cache: NewCache()}
	if cfg.APIKey != "" && cfg.ProjectID != "" {
		r.client = NewClient(cfg.BaseURL, cfg.APIKey, cfg.ProjectID)
		logger.Log.Info("prompt resolver running in connected mode")
	} else {
		logger.Log.Warn("prompt store credentials not found - using fallback prompts")
	}
	return r
}

// Connected reports whether the resolver was built with store credentials.
func (r *Resolver) Connected() bool {
	return r.client != nil
}

// Resolve returns the named template with variables substituted.
// version defaults to "latest". Lookup failures degrade to the fallback
// table; an unknown name degrades to the default template.
func (r *Resolver) Resolve(ctx context.Context, name string, vars Variables, version string) string {
	if version == "" {
		version = "latest"
	}
	key := name + "_" + version

	template, ok := r.cache.Get(key)
	if !ok {
		template = r.fetch(ctx, name, version, key)
	}

	if len(vars) > 0 {
		template = substituteVariables(template, vars)
	}
	return template
}

// fetch tries the remote store in connected mode, caching on success.
func (r *Resolver) fetch(ctx context.Context, name, version, key string) string {
	if r.client == nil {
		return FallbackPrompt(name)
	}

	template, err := r.client.GetPrompt(ctx, name, version)
	if err != nil {
		logger.Log.WithField("prompt", name).Warnf("remote prompt fetch failed: %v", err)
		return FallbackPrompt(name)
	}

	r.cache.Insert(key, template)
	return template
}

// StoreHealthy reports prompt-store reachability. Fallback mode is
// always healthy since its templates are compiled in.
func (r *Resolver) StoreHealthy(ctx context.Context) bool {
	if r.client == nil {
		return true
	}
	return r.client.Health(ctx)
}

// ClearCache drops all cached templates.
func (r *Resolver) ClearCache() {
	r.cache.Clear()
	logger.Log.Info("prompt cache cleared")
}

// CachedPrompts returns the number of templates currently cached.
func (r *Resolver) CachedPrompts() int {
	return r.cache.Len()
}

// substituteVariables performs literal {name} replacement. Placeholders
// without a supplied value are left verbatim.
func substituteVariables(template string, vars Variables) string {
	for key, value := range vars {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, renderValue(value))
	}
	return template
}

func renderValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	default:
		if data, err := json.MarshalIndent(v, "", "  "); err == nil {
			return string(data)
		}
		return fmt.Sprint(v)
	}
}
