package dockside

import "strings"

// Attr resolves a name against the Client's call surface, the way a dynamic
// attribute lookup would. Collection accessor names yield a freshly
// constructed collection; forwarder names yield the bound method.
//
// Unknown names fail with an UnknownAttributeError. When the name exists on
// the low-level APIClient instead, the error says so and points at
// Client.API. Matching ignores case and underscores, so "df", "DiskUsage"
// and "disk_usage" all resolve.
func (c *Client) Attr(name string) (any, error) {
	switch normalizeAttr(name) {
	case "configs":
		return c.Configs(), nil
	case "containers":
		return c.Containers(), nil
	case "images":
		return c.Images(), nil
	case "networks":
		return c.Networks(), nil
	case "nodes":
		return c.Nodes(), nil
	case "plugins":
		return c.Plugins(), nil
	case "secrets":
		return c.Secrets(), nil
	case "services":
		return c.Services(), nil
	case "swarm":
		return c.Swarm(), nil
	case "volumes":
		return c.Volumes(), nil
	case "events":
		return c.Events, nil
	case "df", "diskusage":
		return c.DiskUsage, nil
	case "info":
		return c.Info, nil
	case "login":
		return c.Login, nil
	case "ping":
		return c.Ping, nil
	case "version":
		return c.Version, nil
	case "close":
		return c.Close, nil
	case "api":
		return c.API(), nil
	}

	if _, ok := apiClientMethods[normalizeAttr(name)]; ok {
		return nil, &UnknownAttributeError{Attr: name, LowLevel: true}
	}

	return nil, &UnknownAttributeError{Attr: name}
}

func normalizeAttr(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}

// apiClientMethods lists every APIClient method name, normalized. Names here
// that are not on the Client itself trigger the migration hint in Attr.
var apiClientMethods = map[string]struct{}{
	// containers
	"containerattach":       {},
	"containercommit":       {},
	"containercreate":       {},
	"containerdiff":         {},
	"containerexecattach":   {},
	"containerexeccreate":   {},
	"containerexecinspect":  {},
	"containerexecstart":    {},
	"containerexport":       {},
	"containerinspect":      {},
	"containerkill":         {},
	"containerlist":         {},
	"containerlogs":         {},
	"containerpause":        {},
	"containerremove":       {},
	"containerrename":       {},
	"containerresize":       {},
	"containerrestart":      {},
	"containerstats":        {},
	"containerstatsoneshot": {},
	"containerstart":        {},
	"containerstop":         {},
	"containertop":          {},
	"containerunpause":      {},
	"containerupdate":       {},
	"containerwait":         {},
	"copyfromcontainer":     {},
	"copytocontainer":       {},
	"containersprune":       {},

	// images
	"imagebuild":   {},
	"imagehistory": {},
	"imageinspect": {},
	"imagelist":    {},
	"imageload":    {},
	"imagepull":    {},
	"imagepush":    {},
	"imageremove":  {},
	"imagesave":    {},
	"imagesearch":  {},
	"imagetag":     {},
	"imagesprune":  {},

	// networks
	"networkconnect":    {},
	"networkcreate":     {},
	"networkdisconnect": {},
	"networkinspect":    {},
	"networklist":       {},
	"networkremove":     {},
	"networksprune":     {},

	// volumes
	"volumecreate":  {},
	"volumeinspect": {},
	"volumelist":    {},
	"volumeremove":  {},
	"volumesprune":  {},

	// swarm
	"swarminit":         {},
	"swarmjoin":         {},
	"swarmgetunlockkey": {},
	"swarmunlock":       {},
	"swarmleave":        {},
	"swarminspect":      {},
	"swarmupdate":       {},

	// nodes
	"nodeinspectwithraw": {},
	"nodelist":           {},
	"noderemove":         {},
	"nodeupdate":         {},

	// services
	"servicecreate":         {},
	"serviceinspectwithraw": {},
	"servicelist":           {},
	"serviceremove":         {},
	"serviceupdate":         {},
	"servicelogs":           {},
	"tasklist":              {},

	// secrets
	"secretlist":           {},
	"secretcreate":         {},
	"secretremove":         {},
	"secretinspectwithraw": {},

	// configs
	"configlist":           {},
	"configcreate":         {},
	"configremove":         {},
	"configinspectwithraw": {},

	// plugins
	"pluginlist":           {},
	"pluginremove":         {},
	"pluginenable":         {},
	"plugindisable":        {},
	"plugininstall":        {},
	"pluginupgrade":        {},
	"pluginpush":           {},
	"pluginset":            {},
	"plugininspectwithraw": {},

	// distribution and system
	"distributioninspect": {},
	"registrylogin":       {},
	"serverversion":       {},
	"clientversion":       {},
	"daemonhost":          {},
	"httpclient":          {},
	"negotiateapiversion": {},
}
