// Package rdb rewrites a relay's copy of the template directory.
//
// Each template file holds one settings group, named <label>_<group>.txt.
// Lines are ELEMENT,rest. The rewrite runs two passes per file:
//
//   - substitution: a line whose element has a word bit for this group
//     (or for every group) with a non-empty value is replaced by
//     ELEMENT,"VALUE"<FS><COMMENT>
//   - clearing: in groups the device family clears, every line left
//     unmatched becomes ELEMENT,<clear value><FS>; in F1, when the family
//     asks for it, DP_NAM and DP_SIZE lines become ELEMENT,""<FS>
//
// Lines keep their own terminator, so files nothing touches come out
// byte-identical.
package rdb
