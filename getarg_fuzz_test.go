package getarg

import (
	"strings"
	"testing"

	"github.com/cagecoin-project/getarg/parse"
	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	f.Add("-CGC -noCGC")
	f.Add("--noCGC=0 -CGC=")
	f.Add("-nonofoo -no -no=")
	f.Add("- -- -=x --=x ---x")
	f.Add("-漢字=こんにちは plain -a=b=c")
	f.Add("-n=  -12abc -big=99999999999999999999")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := parse.Split(rawArgs)
		if err != nil {
			return
		}

		m := Parse(args)
		assert.True(t, m.Equal(Parse(args)), "parsing is repeatable")

		direct := map[string]string{}
		for _, p := range parse.Tokenize(args) {
			direct[p.Name] = p.Value
		}

		for _, name := range m.Names() {
			assert.True(t, strings.HasPrefix(name, "-") && len(name) > 1, "name %q", name)

			if v, ok := direct[name]; ok {
				assert.Equal(t, v, m.GetArg(name, ""), "given flags keep their last value")
			}

			_, given := direct[name]
			positive, negation := positiveOf(name)
			switch {
			case given && negation:
				assert.True(t, m.IsArgSet(positive), "%s expands to %s", name, positive)
			case !given:
				// only positives of given negations are added
				_, fromNegation := direct["-no"+name[1:]]
				assert.True(t, fromNegation, "%s was added without a negation", name)
				if negation {
					_, positiveGiven := direct[positive]
					assert.Equal(t, positiveGiven, m.IsArgSet(positive), "%s is not expanded again", name)
				}
			}
		}

		// typed reads never panic
		for _, name := range m.Names() {
			m.GetBoolArg(name, false)
			m.GetIntArg(name, 0)
		}
	})
}
