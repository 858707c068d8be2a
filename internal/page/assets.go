package page

import _ "embed"

// StyleSheet is the site stylesheet, served at css/scons.css.
//
//go:embed assets/scons.css
var StyleSheet []byte
