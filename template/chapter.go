package template

import "text/template"

type ChapterData struct {
	Title string
	Body  string
}

// ChapterXHTML renders one chapter as a standalone XHTML document.
// The body is trusted markup taken from the source site, so this is a
// text template on purpose: nothing gets re-escaped.
var ChapterXHTML = template.Must(template.New("chapter").Parse(`<?xml version='1.0' encoding='utf-8'?>
<!DOCTYPE html>
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en-US">
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8" />
<link rel="stylesheet" type="text/css" href="style.css" />
</head>
<body>
<h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`))
