package applescript

import (
	"fmt"
	"strings"
	"time"
)

const (
	fieldSep  = "|||"
	recordSep = "\x1e"
)

// quote escapes backslashes and double quotes for an AppleScript string literal.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func listExistsScript(list string) string {
	return fmt.Sprintf(`tell application "Reminders" to return (exists list %s)`, quote(list))
}

func createListScript(list string) string {
	return fmt.Sprintf(`tell application "Reminders"
	make new list with properties {name:%s}
end tell`, quote(list))
}

func revealScript(list string) string {
	return fmt.Sprintf(`tell application "Reminders"
	activate
	show list %s
end tell`, quote(list))
}

// dateSetup builds a date variable from components, independent of the
// user's date format. Day is reset to 1 first so month changes never overflow.
func dateSetup(name string, t time.Time, hasTime bool) string {
	seconds := 0
	if hasTime {
		seconds = t.Hour()*3600 + t.Minute()*60
	}
	return fmt.Sprintf(`set %[1]s to current date
set day of %[1]s to 1
set year of %[1]s to %[2]d
set month of %[1]s to %[3]d
set day of %[1]s to %[4]d
set time of %[1]s to %[5]d
`, name, t.Year(), int(t.Month()), t.Day(), seconds)
}

type createParams struct {
	List    string
	Title   string
	Notes   string
	Due     time.Time
	HasDue  bool
	HasTime bool
}

func createReminderScript(p createParams) string {
	var b strings.Builder
	props := []string{"name:" + quote(p.Title)}
	if p.Notes != "" {
		props = append(props, "body:"+quote(p.Notes))
	}
	if p.HasDue {
		b.WriteString(dateSetup("dueDate", p.Due, p.HasTime))
		props = append(props, "due date:dueDate")
	}
	fmt.Fprintf(&b, `tell application "Reminders"
	tell list %s
		set newReminder to make new reminder with properties {%s}
		return id of newReminder
	end tell
end tell`, quote(p.List), strings.Join(props, ", "))
	return b.String()
}

// dueScript prints id, name, ISO due date and body of every incomplete
// reminder with a due date, one record per recordSep.
func dueScript(list string, timeout time.Duration) string {
	return fmt.Sprintf(`on pad(n)
	return text -2 thru -1 of ("0" & (n as string))
end pad

on iso(d)
	set s to time of d
	return ((year of d) as string) & "-" & pad((month of d) as integer) & "-" & pad(day of d) & "T" & pad(s div 3600) & ":" & pad((s mod 3600) div 60) & ":" & pad(s mod 60)
end iso

set out to ""
with timeout of %[2]d seconds
	tell application "Reminders"
		repeat with r in (reminders of list %[1]s whose completed is false)
			set d to due date of r
			if d is not missing value then
				set b to body of r
				if b is missing value then set b to ""
				set out to out & (id of r) & "%[3]s" & (name of r) & "%[3]s" & my iso(d) & "%[3]s" & b & (character id 30)
			end if
		end repeat
	end tell
end timeout
return out`, quote(list), int(timeout.Seconds()), fieldSep)
}
