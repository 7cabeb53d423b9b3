package rowan

// SpriteGroup lazily yields the sprites a detection rule tests. It is
// re-evaluated every tick, so groups can be backed by live tree queries.
type SpriteGroup func() []*GameObject

// CollisionHandler is invoked once per overlapping pair per rule per tick.
type CollisionHandler func(a, b *GameObject)

type detection struct {
	groupA   SpriteGroup
	groupB   SpriteGroup
	callback CollisionHandler
}

// NewSpriteCollisions creates an object that evaluates its detection rules
// each enabled tick. Add it to the tree wherever collision checks should run
// in update order.
func NewSpriteCollisions() *GameObject {
	o := &GameObject{
		Kind:    KindCollisions,
		Enabled: true,
		Visible: true,
	}
	o.SetActive(true)
	return o
}

// AddDetection appends a rule pairing two sprite groups with a callback.
// Rules run in registration order; a pair matching multiple rules triggers
// each rule's callback.
func (o *GameObject) AddDetection(groupA, groupB SpriteGroup, callback CollisionHandler) {
	o.detections = append(o.detections, detection{
		groupA:   groupA,
		groupB:   groupB,
		callback: callback,
	})
}

// stepCollisions runs every rule over the cross product of its two groups.
// Pairs with either side already marked destroyed are skipped, so a callback
// that destroys a sprite suppresses that sprite's remaining pairs this tick.
func (o *GameObject) stepCollisions() {
	for _, d := range o.detections {
		for _, a := range d.groupA() {
			for _, b := range d.groupB() {
				if a.destroyed || b.destroyed {
					continue
				}
				if a.Bounds().Intersects(b.Bounds()) {
					d.callback(a, b)
				}
			}
		}
	}
}
