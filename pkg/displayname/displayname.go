// Package displayname maps application bundle identifiers to human readable
// names. It is a static lookup applied after the engine has produced the
// timeline; unknown identifiers pass through unchanged.
package displayname

// defaultNames covers the bundle ids commonly seen in the usage stream.
var defaultNames = map[string]string{
	"com.apple.finder":            "Finder",
	"com.tencent.xinWeChat":       "WeChat",
	"com.googlecode.iterm2":       "iTerm2",
	"com.electron.lark.iron":      "Lark Meetings",
	"com.jetbrains.goland":        "GoLand",
	"com.electron.lark":           "Lark",
	"com.google.Chrome":           "Chrome",
	"cn.trae.app":                 "Trae",
	"com.exafunction.windsurf":    "Windsurf",
	"org.python.python":           "Python",
	"com.microsoft.VSCode":        "VSCode",
	"com.tencent.QQMusicMac":      "QQ Music",
	"com.apple.systempreferences": "System Settings",
}

// Resolver resolves display names with optional operator overrides layered
// over the built-in table.
type Resolver struct {
	overrides map[string]string
}

func NewResolver(overrides map[string]string) *Resolver {
	return &Resolver{overrides: overrides}
}

func (r *Resolver) Resolve(appID string) string {
	if r != nil && r.overrides != nil {
		if name, ok := r.overrides[appID]; ok {
			return name
		}
	}
	if name, ok := defaultNames[appID]; ok {
		return name
	}
	return appID
}
