package tool

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Catalog is a thread-safe registry of tools keyed by lowercase name.
type Catalog struct {
	mu    sync.RWMutex
	tools map[string]GenericTool
}

// NewCatalog creates a catalog holding the given tools.
func NewCatalog(tools ...GenericTool) *Catalog {
	c := &Catalog{tools: make(map[string]GenericTool, len(tools))}
	c.Add(tools...)
	return c
}

// Add registers tools under their advertised name. A tool with the same
// name, ignoring case, is replaced.
func (c *Catalog) Add(tools ...GenericTool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range tools {
		c.tools[strings.ToLower(t.ToolInfo().Name)] = t
	}
}

// Get retrieves a tool by name, ignoring case.
func (c *Catalog) Get(name string) (GenericTool, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tools[strings.ToLower(name)]
	return t, ok
}

// Has reports whether a tool with the given name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.Get(name)
	return ok
}

// Remove unregisters a tool and reports whether it was present.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(name)
	if _, ok := c.tools[key]; !ok {
		return false
	}
	delete(c.tools, key)
	return true
}

// Size returns the number of registered tools.
func (c *Catalog) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tools)
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.tools))
	for name := range c.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Infos returns the advertised info of every tool, sorted by name.
func (c *Catalog) Infos() []Info {
	names := c.Names()

	c.mu.RLock()
	defer c.mu.RUnlock()

	infos := make([]Info, 0, len(names))
	for _, name := range names {
		if t, ok := c.tools[name]; ok {
			infos = append(infos, t.ToolInfo())
		}
	}
	return infos
}

// Call dispatches a JSON-encoded tool call to the named tool.
func (c *Catalog) Call(ctx context.Context, name string, inputJson string) (string, error) {
	t, ok := c.Get(name)
	if !ok {
		return "", fmt.Errorf("tool %q not found in catalog", name)
	}
	return t.Call(ctx, inputJson)
}
