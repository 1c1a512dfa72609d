package models

// OwnerID implementations feed the authz predicate. Quotes and reviews
// have no direct owner check; their authority flows through the parent
// project or list scoping.

func (p *Project) OwnerID() uint           { return p.UserID }
func (d *DesignInspiration) OwnerID() uint { return d.UserID }
