// Package blog assembles the topic -> title -> body pipeline on top of the
// workflow package.
//
// A pipeline is two prompt steps, title_generator and blog_writer, chained
// between the workflow Start and End sentinels. Each step owns its generator,
// so the title and body can use different models and sampling temperatures.
// Variants differ only in prompt wording; the graph shape and the executor are
// the same for all of them.
//
//	reg, err := blog.Build(blog.Variants(), blog.Generators{Title: titleGen, Body: bodyGen})
//	if err != nil {
//	    return err
//	}
//	agent, _ := reg.Get(blog.DefaultVariant)
//	body, err := agent.Write(ctx, "coffee brewing")
package blog
