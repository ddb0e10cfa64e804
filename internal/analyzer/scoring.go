package analyzer

// scoreRule contributes points for one structural feature. Rules are
// additive and independent, which keeps the score monotonic: adding a
// feature can only add points.
type scoreRule struct {
	name   string
	points func(f features) int
}

var scoreRules = []scoreRule{
	{"extra flags", func(f features) int {
		if len(f.flags) > 1 {
			return len(f.flags) - 1
		}
		return 0
	}},
	{"pipeline stage", func(f features) int {
		if f.inPipeline {
			return 1
		}
		return 0
	}},
	{"redirection", func(f features) int {
		if f.hasRedirect {
			return 1
		}
		return 0
	}},
	{"subshell", func(f features) int {
		if f.hasSubshell {
			return 1
		}
		return 0
	}},
	{"extra args", func(f features) int {
		if f.args > 3 {
			return f.args - 3
		}
		return 0
	}},
}

// score computes the 1..5 complexity of one command shape.
func score(f features) int {
	s := 1
	for _, r := range scoreRules {
		s += r.points(f)
	}
	if s < 1 {
		s = 1
	}
	if s > 5 {
		s = 5
	}
	return s
}
