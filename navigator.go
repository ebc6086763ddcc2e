package patchnotes

// Section names accepted when looking for the announcements sub-forum.
var SectionNames = []string{"News and Announcements", "News & Announcements"}

// Navigator finds links on forum pages.
//
// Selection relies on forum list order: the first qualifying thread is
// taken as the latest one. No dates are checked.
type Navigator interface {
	// FindSection returns the absolute URL of the announcements sub-forum
	// linked from the forum index. Returns ENOTFOUND if there is none.
	FindSection(html string, baseURL string) (string, error)

	// FindThread returns the absolute URL of the first SkyBlock update
	// thread listed on a sub-forum page. Returns ENOTFOUND if there is none.
	FindThread(html string, baseURL string) (string, error)
}
