package fonts

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultName is the catalogue entry used for unknown font names.
const DefaultName = "goregular24"

type source struct {
	ttf  []byte
	size float64
}

// builtin lists the tables that can be requested by name. They are baked on
// first use and kept for the life of the process.
var builtin = map[string]source{
	"basic13":     {},
	"goregular18": {ttf: goregular.TTF, size: 18},
	"goregular24": {ttf: goregular.TTF, size: 24},
	"goregular30": {ttf: goregular.TTF, size: 30},
	"goregular36": {ttf: goregular.TTF, size: 36},
	"gomono18":    {ttf: gomono.TTF, size: 18},
	"gomono24":    {ttf: gomono.TTF, size: 24},
	"gobold24":    {ttf: gobold.TTF, size: 24},
}

// aliases maps the classic family names (times36, georgia24, arial18, ...)
// onto the Go font of the same pixel size.
var aliases = func() map[string]string {
	out := map[string]string{}
	for _, family := range []string{"times", "georgia", "arial"} {
		for _, size := range []string{"18", "24", "30", "36"} {
			out[family+size] = "goregular" + size
		}
	}
	return out
}()

func canonical(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := aliases[key]; ok {
		return alias
	}
	return key
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*Font{}
)

func (s source) build() (*Font, error) {
	if s.ttf == nil {
		return FromFace(basicfont.Face7x13)
	}
	return FromTrueType(s.ttf, s.size)
}

// Lookup returns the catalogue font called name. Family aliases such as
// "times36" or "georgia24" resolve to the goregular entry of that size;
// other unknown names resolve to DefaultName.
func Lookup(name string) (*Font, error) {
	key := canonical(name)
	src, ok := builtin[key]
	if !ok {
		key = DefaultName
		src = builtin[key]
	}

	cacheMu.Lock()
	defer cacheMu.Unlock()
	if f, ok := cache[key]; ok {
		return f, nil
	}
	f, err := src.build()
	if err != nil {
		return nil, fmt.Errorf("构建内置字体 %s 失败: %w", key, err)
	}
	cache[key] = f
	return f, nil
}

// Has reports whether name is a catalogue entry or an alias of one.
func Has(name string) bool {
	_, ok := builtin[canonical(name)]
	return ok
}

// Names lists the catalogue in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
