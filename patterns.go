package prettyregex

// Ready-made PRX patterns for common formats. They match anywhere in the
// subject unless anchored with start and end.
const (
	Email          = `[charU+charL+0-9+char(.)+char(_)+char(%)+char(-)]+char(@)[charU+charL+0-9+char(.)+char(-)]+char(.)[charU+charL]{2,}`
	URL            = `string(http)string(s)?char(:)char(/)char(/)[charU+charL+0-9+char(-)+char(.)]+(char(/)[charU+charL+0-9+char(-)+char(.)+char(_)+char(~)+char(%)+char(/)]*)?`
	Phone          = `digit{3}char(-)digit{3}char(-)digit{4}`
	IPv4           = `digit{1,3}char(.)digit{1,3}char(.)digit{1,3}char(.)digit{1,3}`
	UUID           = `[0-9+a-f]{8}char(-)[0-9+a-f]{4}char(-)[0-9+a-f]{4}char(-)[0-9+a-f]{4}char(-)[0-9+a-f]{12}`
	HexColor       = `char(#)([0-9+a-f+A-F]{6}|[0-9+a-f+A-F]{3})`
	Date           = `digit{4}char(-)digit{2}char(-)digit{2}`
	Time24         = `([01]digit|char(2)[0-3])char(:)[0-5]digit`
	ZipCode        = `digit{5}(char(-)digit{4})?`
	PasswordStrong = `start[charU&charL&0-9]{8,}end`
	Username       = `start[charL+0-9+char(_)]{3,16}end`
	Slug           = `start[charL+0-9]+(char(-)[charL+0-9]+)*end`
)
