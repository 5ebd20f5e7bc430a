// SPDX-License-Identifier: GPL-3.0-or-later

package info

// VERSION current framespector release
var VERSION = "v0.1.0"
