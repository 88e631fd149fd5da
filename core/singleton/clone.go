package singleton

// CloneSafe exposes Clone without allowing a second instance.
type CloneSafe struct{ identity }

var cloneSafeInstance = &CloneSafe{newIdentity()}

// CloneSafeInstance returns the canonical instance.
func CloneSafeInstance() *CloneSafe { return cloneSafeInstance }

// Clone returns the canonical instance instead of a copy.
func (*CloneSafe) Clone() *CloneSafe { return cloneSafeInstance }
