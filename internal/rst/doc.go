// Package rst reads documentation declarations written as reStructuredText
// directives:
//
//	.. begin_ros_pkg:: nav
//	   :description: Navigation stack
//
//	.. begin_ros_exec:: planner
//	   :short_descr: Path planner
//
//	.. declare_ros_parameter:: frequency
//	   :type: float
//	   :default: 10.0
//
//	.. end_ros_exec::
//	.. end_ros_pkg::
//
//	.. show_ros_pkg:: nav
//
// Only the directives listed in directiveKinds are extracted; all other text
// of the file is ignored.
package rst
