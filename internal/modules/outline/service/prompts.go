package service

import "fmt"

const structurePromptTemplate = `You are an expert educator and learning assistant. Your task is to analyze the following syllabus text and structure it into a hierarchical mind map, designed for easy memorization.

Focus on identifying the core concepts, main topics, and sub-topics, and organize them logically.

Provide your output ONLY as a single, valid JSON object. The JSON structure should be recursive, with a 'name' for the topic and a 'children' array for its sub-topics. The root element should represent the overall subject of the syllabus.

Do not include any text, explanations, or markdown formatting outside of the JSON object itself.

Example of the required JSON format:
{
  "name": "Overall Subject",
  "children": [
    {
      "name": "Main Topic 1",
      "children": [
        {"name": "Sub-topic 1.1"},
        {"name": "Sub-topic 1.2"}
      ]
    },
    {
      "name": "Main Topic 2"
    }
  ]
}

Syllabus text to analyze:
---
%s
---`

func structurePrompt(syllabusText string) string {
	return fmt.Sprintf(structurePromptTemplate, syllabusText)
}
