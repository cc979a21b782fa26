// Package hcl provides the HCL implementation of config.Loader.
//
// A documentation file looks like this:
//
//	package "nav" {
//	  description = "Navigation stack"
//
//	  executable "planner" {
//	    short_descr = "Path planner"
//
//	    parameter "frequency" {
//	      type    = "float"
//	      default = "10.0"
//	    }
//
//	    interface "goal" {
//	      category = "topic in"
//	      in_type  = "geometry_msgs/PoseStamped"
//	    }
//	  }
//
//	  launch "nav_launch" {
//	    exec_used = ["planner"]
//	    argument "use_sim" {}
//	  }
//	}
//
//	show "nav" {}
//
// Blocks are flattened into the begin/end declaration stream in source order.
package hcl
