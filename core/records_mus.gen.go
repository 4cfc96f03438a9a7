// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice1pYAh0pPjIrOQJxwoVΔWygΞΞ = ord.NewSliceSer[float32](varint.Float32)
	slicei4vJcqcpeIvHVqWE2TkE2gΞΞ = ord.NewSliceSer[string](ord.String)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var SeniorityMUS = seniorityMUS{}

type seniorityMUS struct{}

func (s seniorityMUS) Marshal(v Seniority, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s seniorityMUS) Unmarshal(bs []byte) (v Seniority, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Seniority(tmp)
	return
}

func (s seniorityMUS) Size(v Seniority) (size int) {
	return ord.String.Size(string(v))
}

func (s seniorityMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var RemoteRequirementMUS = remoteRequirementMUS{}

type remoteRequirementMUS struct{}

func (s remoteRequirementMUS) Marshal(v RemoteRequirement, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s remoteRequirementMUS) Unmarshal(bs []byte) (v RemoteRequirement, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = RemoteRequirement(tmp)
	return
}

func (s remoteRequirementMUS) Size(v RemoteRequirement) (size int) {
	return varint.Int.Size(int(v))
}

func (s remoteRequirementMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var CatalogItemMUS = catalogItemMUS{}

type catalogItemMUS struct{}

func (s catalogItemMUS) Marshal(v CatalogItem, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.URL, bs[n:])
	n += ord.String.Marshal(v.Name, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += varint.Int.Marshal(v.Duration, bs[n:])
	n += slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Marshal(v.TestTypes, bs[n:])
	n += ord.String.Marshal(v.RemoteSupport, bs[n:])
	n += ord.String.Marshal(v.AdaptiveSupport, bs[n:])
	n += varint.Int.Marshal(v.Ordinal, bs[n:])
	n += slice1pYAh0pPjIrOQJxwoVΔWygΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s catalogItemMUS) Unmarshal(bs []byte) (v CatalogItem, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.URL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Duration, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.TestTypes, n1, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RemoteSupport, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.AdaptiveSupport, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Ordinal, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slice1pYAh0pPjIrOQJxwoVΔWygΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s catalogItemMUS) Size(v CatalogItem) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.URL)
	size += ord.String.Size(v.Name)
	size += ord.String.Size(v.Description)
	size += varint.Int.Size(v.Duration)
	size += slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Size(v.TestTypes)
	size += ord.String.Size(v.RemoteSupport)
	size += ord.String.Size(v.AdaptiveSupport)
	size += varint.Int.Size(v.Ordinal)
	size += slice1pYAh0pPjIrOQJxwoVΔWygΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s catalogItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice1pYAh0pPjIrOQJxwoVΔWygΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var DomainMixMUS = domainMixMUS{}

type domainMixMUS struct{}

func (s domainMixMUS) Marshal(v DomainMix, bs []byte) (n int) {
	n = varint.Float64.Marshal(v.K, bs)
	return n + varint.Float64.Marshal(v.P, bs[n:])
}

func (s domainMixMUS) Unmarshal(bs []byte) (v DomainMix, n int, err error) {
	v.K, n, err = varint.Float64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.P, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	return
}

func (s domainMixMUS) Size(v DomainMix) (size int) {
	size = varint.Float64.Size(v.K)
	return size + varint.Float64.Size(v.P)
}

func (s domainMixMUS) Skip(bs []byte) (n int, err error) {
	n, err = varint.Float64.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	return
}

var IntentMUS = intentMUS{}

type intentMUS struct{}

func (s intentMUS) Marshal(v Intent, bs []byte) (n int) {
	n = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Marshal(v.HardSkills, bs)
	n += slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Marshal(v.SoftSkills, bs[n:])
	n += slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Marshal(v.Roles, bs[n:])
	n += SeniorityMUS.Marshal(v.Seniority, bs[n:])
	n += varint.Int.Marshal(v.DurationLimitMinutes, bs[n:])
	n += RemoteRequirementMUS.Marshal(v.RemoteRequired, bs[n:])
	return n + DomainMixMUS.Marshal(v.DomainMix, bs[n:])
}

func (s intentMUS) Unmarshal(bs []byte) (v Intent, n int, err error) {
	v.HardSkills, n, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.SoftSkills, n1, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Roles, n1, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Seniority, n1, err = SeniorityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DurationLimitMinutes, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RemoteRequired, n1, err = RemoteRequirementMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.DomainMix, n1, err = DomainMixMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s intentMUS) Size(v Intent) (size int) {
	size = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Size(v.HardSkills)
	size += slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Size(v.SoftSkills)
	size += slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Size(v.Roles)
	size += SeniorityMUS.Size(v.Seniority)
	size += varint.Int.Size(v.DurationLimitMinutes)
	size += RemoteRequirementMUS.Size(v.RemoteRequired)
	return size + DomainMixMUS.Size(v.DomainMix)
}

func (s intentMUS) Skip(bs []byte) (n int, err error) {
	n, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicei4vJcqcpeIvHVqWE2TkE2gΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = SeniorityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = RemoteRequirementMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = DomainMixMUS.Skip(bs[n:])
	n += n1
	return
}
