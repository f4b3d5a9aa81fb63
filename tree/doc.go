/*
Package tree implements a general purpose tree type.

Styling and layout of HTML/CSS involves operations on different trees:
the styled tree and the layout tree. We implement both on top of this
generic tree type. In Go we resort to composition, thus including a
generic tree node in every node (sub-)type. Node payloads reference the
node sub-type, allowing to get from the generic node to the sub-type.

Trees are owned top-down. Nodes do not link back to their parents; walks
hand the parent to an action instead.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree
