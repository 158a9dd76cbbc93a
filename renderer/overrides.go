package renderer

// Overrides maps a format to the priority its Renderers take instead of the declared one.
//
// Values are typed any since they usually come straight out of configuration.
// Only integer values are honored; anything else is ignored.
type Overrides map[string]any

// Priority reports the overriding priority for format.
func (o Overrides) Priority(format string) (int, bool) {
	switch v := o[format].(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		return int(v), true
	case uint64:
		return int(v), true
	default:
		return 0, false
	}
}

// overridesFor picks the resource's own table when it declares a non-empty one.
func overridesFor(res Resource, global Overrides) Overrides {
	if po, ok := res.(PriorityOverrider); ok {
		if own := po.OverridePriority(); len(own) > 0 {
			return own
		}
	}

	return global
}
