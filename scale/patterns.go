package scale

import "github.com/katalvlaran/solfege/interval"

// qualityIntervals gives the ascending interval pattern of each quality.
// Melodic minor is the ascending form; its descending form coincides with
// the natural minor and carries no extra information for a seven-note scale.
var qualityIntervals = map[Quality][degreeCount]interval.Interval{
	Major: {
		interval.PerfectUnison,
		interval.MajorSecond,
		interval.MajorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MajorSixth,
		interval.MajorSeventh,
	},
	NaturalMinor: {
		interval.PerfectUnison,
		interval.MajorSecond,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MinorSixth,
		interval.MinorSeventh,
	},
	HarmonicMinor: {
		interval.PerfectUnison,
		interval.MajorSecond,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MinorSixth,
		interval.MajorSeventh,
	},
	MelodicMinor: {
		interval.PerfectUnison,
		interval.MajorSecond,
		interval.MinorThird,
		interval.PerfectFourth,
		interval.PerfectFifth,
		interval.MajorSixth,
		interval.MajorSeventh,
	},
}
