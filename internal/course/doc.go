// internal/course/doc.go

/*
Package course defines the course record and the line parser that turns one
row of a catalog source into a record.

A catalog row has the shape `CODE,Title[,PREREQ1[,PREREQ2...]]`. Fields are
split on a single comma and trimmed; there is no quoting, so a comma inside a
field cannot be represented. Course codes (the first field and every
prerequisite) are normalized to uppercase, titles are kept verbatim.
*/
package course
