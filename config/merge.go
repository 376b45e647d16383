package config

// mergeConfigs merges override configuration into base
func mergeConfigs(base, override *Config) *Config {
	result := *base

	if override.Version != "" {
		result.Version = override.Version
	}

	result.Picker = mergePicker(result.Picker, override.Picker)
	result.Source = mergeSource(result.Source, override.Source)

	if override.Extensions != nil {
		merged := make(map[string]interface{}, len(result.Extensions)+len(override.Extensions))
		for key, value := range result.Extensions {
			merged[key] = value
		}
		for key, value := range override.Extensions {
			// Extension maps merge one level deep
			if baseMap, ok := merged[key].(map[string]interface{}); ok {
				if overrideMap, ok := value.(map[string]interface{}); ok {
					mergedMap := make(map[string]interface{}, len(baseMap)+len(overrideMap))
					for k, v := range baseMap {
						mergedMap[k] = v
					}
					for k, v := range overrideMap {
						mergedMap[k] = v
					}
					merged[key] = mergedMap
					continue
				}
			}
			merged[key] = value
		}
		result.Extensions = merged
	}

	return &result
}

func mergePicker(base, override PickerConfig) PickerConfig {
	result := base

	if override.CategoryOrder != "" {
		result.CategoryOrder = override.CategoryOrder
	}
	if len(override.CategoryPriority) > 0 {
		result.CategoryPriority = override.CategoryPriority
	}
	if len(override.Labels) > 0 {
		labels := make(map[string]string, len(base.Labels)+len(override.Labels))
		for k, v := range base.Labels {
			labels[k] = v
		}
		for k, v := range override.Labels {
			labels[k] = v
		}
		result.Labels = labels
	}
	if len(override.Kinds) > 0 {
		result.Kinds = override.Kinds
	}
	if override.Confirm != nil {
		result.Confirm = override.Confirm
	}
	if len(override.Keys) > 0 {
		keys := make(KeybindingSectionConfig, len(base.Keys)+len(override.Keys))
		for k, v := range base.Keys {
			keys[k] = v
		}
		for k, v := range override.Keys {
			keys[k] = v
		}
		result.Keys = keys
	}

	return result
}

func mergeSource(base, override SourceConfig) SourceConfig {
	result := base

	if override.File != "" {
		result.File = override.File
	}
	if len(override.Ignore) > 0 {
		result.Ignore = override.Ignore
	}

	return result
}
