package conf

import (
	"github.com/cagecoin-project/getarg/errs"
	"go.yaml.in/yaml/v3"
)

func parseYAML(data []byte, name string) ([]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errs.ErrConfigParse.WithArgs(name).Wrap(err)
	}
	// empty document
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errs.ErrConfigParse.WithArgs(name)
	}

	tokens := make([]string, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, errs.ErrConfigParse.WithArgs(name)
		}
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}
		if value == nil || value.Kind != yaml.ScalarNode {
			return nil, errs.ErrConfigValue.WithArgs(name, key.Value)
		}

		tokens = append(tokens, token(key.Value, scalar(value)))
	}

	return tokens, nil
}

func scalar(n *yaml.Node) string {
	switch n.ShortTag() {
	case "!!null":
		return ""
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return boolValue(b)
		}
	}
	return n.Value
}
