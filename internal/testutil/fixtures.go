package testutil

import (
	"github.com/alexanderramin/presence/internal/api"
)

// Fixture users and quarters, in the order the API returns them.
var (
	FixtureUsers = []api.User{
		{UserID: 141, Name: "Adam P.", Avatar: "https://intranet.stxnext.pl/api/images/users/141"},
		{UserID: 176, Name: "Adrian K.", Avatar: "https://intranet.stxnext.pl/api/images/users/176"},
		{UserID: 10, Name: "Maciej Z.", Avatar: "https://intranet.stxnext.pl/api/images/users/10"},
	}

	FixtureQuarters = []api.Quarter{
		{QuarterID: 1, Name: "1 quarter of 2013"},
		{QuarterID: 2, Name: "2 quarter of 2013"},
	}
)

// Report bodies shaped like the presence analyzer responses.
const (
	FixtureMeanTime = `[
		["Mon", 30047.5], ["Tue", 29880], ["Wed", 30300],
		["Thu", 28700], ["Fri", 27200], ["Sat", 0], ["Sun", 0]
	]`

	FixtureStartEnd = `[
		["Mon", 33134, 57257], ["Tue", 33590, 50154], ["Wed", 33206, 58527],
		["Thu", 35602, 58586], ["Fri", 47816, 58029]
	]`

	FixtureWeekday = `[
		["Weekday", "Presence (s)"],
		["Mon", 24123], ["Tue", 16564], ["Wed", 25321],
		["Thu", 45968], ["Fri", 6426], ["Sat", 0], ["Sun", 0]
	]`

	FixtureOvertime = `[
		[{"user_id": 141, "name": "Adam P.", "avatar": "https://intranet.stxnext.pl/api/images/users/141"}, 42.8],
		[{"user_id": 10, "name": "Maciej Z.", "avatar": "https://intranet.stxnext.pl/api/images/users/10"}, 7.2]
	]`
)

// FixtureReports maps every report endpoint to its fixture body.
func FixtureReports() map[string]string {
	return map[string]string{
		api.PathMeanTimeWeekday:  FixtureMeanTime,
		api.PathPresenceStartEnd: FixtureStartEnd,
		api.PathPresenceWeekday:  FixtureWeekday,
		api.PathOvertimeQuarter:  FixtureOvertime,
	}
}
