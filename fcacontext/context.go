package fcacontext

import "github.com/katalvlaran/lvlath-fca/bitset"

// Context represents the binary relation R ⊆ X × Y. Construct with Make;
// Relate/Unrelate return a new Context, sharing the two domain tags, with
// the array spines copied and the touched cells replaced by fresh bitsets.
type Context[X comparable, Y comparable] struct {
	objDomain *bitset.Bitset[X] // empty bitset fixing the X domain and its origin
	attrDomain *bitset.Bitset[Y] // empty bitset fixing the Y domain and its origin

	fwd []*bitset.Bitset[Y] // fwd[ix(x)] = attributes related to x
	rev []*bitset.Bitset[X] // rev[iy(y)] = objects related to y

	xString func(X) string
	yString func(Y) string
}

// Make builds the empty Context R = ∅ over the given object and attribute
// domains. xString/yString render a domain element for textual reports; pass
// nil to use fmt.Sprint.
func Make[X comparable, Y comparable](xs []X, ys []Y, xString func(X) string, yString func(Y) string) (*Context[X, Y], error) {
	objDomain, err := bitset.Make(xs)
	if err != nil {
		return nil, ErrEmptyDomain
	}
	attrDomain, err := bitset.Make(ys)
	if err != nil {
		return nil, ErrEmptyDomain
	}

	fwd := make([]*bitset.Bitset[Y], len(xs))
	for i := range fwd {
		fwd[i] = attrDomainEmpty(attrDomain)
	}
	rev := make([]*bitset.Bitset[X], len(ys))
	for i := range rev {
		rev[i] = objDomainEmpty(objDomain)
	}

	return &Context[X, Y]{
		objDomain:  objDomain,
		attrDomain: attrDomain,
		fwd:        fwd,
		rev:        rev,
		xString:    xString,
		yString:    yString,
	}, nil
}

// attrDomainEmpty returns a fresh empty bitset sharing attrDomain's origin.
func attrDomainEmpty[Y comparable](attrDomain *bitset.Bitset[Y]) *bitset.Bitset[Y] {
	full := attrDomain.Full()
	out, _ := bitset.Minus(full, full)

	return out
}

// objDomainEmpty returns a fresh empty bitset sharing objDomain's origin.
func objDomainEmpty[X comparable](objDomain *bitset.Bitset[X]) *bitset.Bitset[X] {
	full := objDomain.Full()
	out, _ := bitset.Minus(full, full)

	return out
}

// clone returns a shallow copy of c: fresh fwd/rev array spines referencing
// the same per-cell bitsets, ready for one or two cells to be replaced.
func (c *Context[X, Y]) clone() *Context[X, Y] {
	fwd := make([]*bitset.Bitset[Y], len(c.fwd))
	copy(fwd, c.fwd)
	rev := make([]*bitset.Bitset[X], len(c.rev))
	copy(rev, c.rev)

	return &Context[X, Y]{
		objDomain:  c.objDomain,
		attrDomain: c.attrDomain,
		fwd:        fwd,
		rev:        rev,
		xString:    c.xString,
		yString:    c.yString,
	}
}

// Relate returns a new Context with (x, y) added to R.
func (c *Context[X, Y]) Relate(x X, y Y) (*Context[X, Y], error) {
	ix, err := c.objDomain.Index(x)
	if err != nil {
		return nil, ErrDomainError
	}
	iy, err := c.attrDomain.Index(y)
	if err != nil {
		return nil, ErrDomainError
	}
	out := c.clone()
	fwdX, err := out.fwd[ix].Add(y)
	if err != nil {
		return nil, err
	}
	revY, err := out.rev[iy].Add(x)
	if err != nil {
		return nil, err
	}
	out.fwd[ix] = fwdX
	out.rev[iy] = revY

	return out, nil
}

// Unrelate returns a new Context with (x, y) removed from R.
func (c *Context[X, Y]) Unrelate(x X, y Y) (*Context[X, Y], error) {
	ix, err := c.objDomain.Index(x)
	if err != nil {
		return nil, ErrDomainError
	}
	iy, err := c.attrDomain.Index(y)
	if err != nil {
		return nil, ErrDomainError
	}
	out := c.clone()
	fwdX, err := out.fwd[ix].Remove(y)
	if err != nil {
		return nil, err
	}
	revY, err := out.rev[iy].Remove(x)
	if err != nil {
		return nil, err
	}
	out.fwd[ix] = fwdX
	out.rev[iy] = revY

	return out, nil
}

// Common computes common(R, O): the attributes shared by every object in O.
// The empty object set maps to the full attribute domain.
func (c *Context[X, Y]) Common(o *bitset.Bitset[X]) (*bitset.Bitset[Y], error) {
	members := o.Members()
	sets := make([]*bitset.Bitset[Y], 0, len(members))
	for _, x := range members {
		ix, err := c.objDomain.Index(x)
		if err != nil {
			return nil, err
		}
		sets = append(sets, c.fwd[ix])
	}

	return bitset.Intersects(c.attrDomain.Full(), sets)
}

// CommonPrime computes common'(R, A): the objects sharing every attribute in
// A. The empty attribute set maps to the full object domain.
func (c *Context[X, Y]) CommonPrime(a *bitset.Bitset[Y]) (*bitset.Bitset[X], error) {
	members := a.Members()
	sets := make([]*bitset.Bitset[X], 0, len(members))
	for _, y := range members {
		iy, err := c.attrDomain.Index(y)
		if err != nil {
			return nil, err
		}
		sets = append(sets, c.rev[iy])
	}

	return bitset.Intersects(c.objDomain.Full(), sets)
}

// ObjectDomain returns the full object-domain bitset.
func (c *Context[X, Y]) ObjectDomain() *bitset.Bitset[X] { return c.objDomain.Full() }

// AttributeDomain returns the full attribute-domain bitset.
func (c *Context[X, Y]) AttributeDomain() *bitset.Bitset[Y] { return c.attrDomain.Full() }

// EmptyObjects returns the empty bitset over the object domain.
func (c *Context[X, Y]) EmptyObjects() *bitset.Bitset[X] { return objDomainEmpty(c.objDomain) }

// EmptyAttributes returns the empty bitset over the attribute domain.
func (c *Context[X, Y]) EmptyAttributes() *bitset.Bitset[Y] { return attrDomainEmpty(c.attrDomain) }

// StringX renders an object element for textual reports.
func (c *Context[X, Y]) StringX(x X) string {
	if c.xString != nil {
		return c.xString(x)
	}

	return fmtSprint(x)
}

// StringY renders an attribute element for textual reports.
func (c *Context[X, Y]) StringY(y Y) string {
	if c.yString != nil {
		return c.yString(y)
	}

	return fmtSprint(y)
}
