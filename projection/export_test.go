// SPDX-License-Identifier: MIT

package projection

// ScaleEigenpairs exposes scaleEigenpairs to the external test package.
var ScaleEigenpairs = scaleEigenpairs
